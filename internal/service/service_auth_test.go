package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/mock"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/store"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

type authFixture struct {
	svc    *authService
	repo   *mock.MockAccountRepository
	ledger *mock.MockOTPLedger
	mailer *mock.MockMailer
}

func newAuthFixture(t *testing.T, mode string, opts ...AuthServiceOption) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := authFixture{
		repo:   mock.NewMockAccountRepository(ctrl),
		ledger: mock.NewMockOTPLedger(ctrl),
		mailer: mock.NewMockMailer(ctrl),
	}
	cfg := config.App{VerifyOTPMode: mode}
	f.svc = NewAuthService(f.repo, f.ledger, f.mailer, cfg, logger.Nop(), opts...).(*authService)

	return f
}

func sha(s string) string {
	return utils.HashString(s, "")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	gomock.InOrder(
		f.repo.EXPECT().CreateAccount(ctx, models.Account{
			Identity: 1, Username: "alice", Email: "a@x.com", PasswordHash: sha("pw1"),
		}).Return(models.Account{Identity: 1, Username: "alice", Email: "a@x.com"}, nil),
		f.mailer.EXPECT().Send(ctx, "a@x.com", registrationSubject, registrationBody).Return(nil),
	)

	out, err := f.svc.Register(ctx, models.RegisterCommand{Identity: 1, Username: "alice", Password: "pw1", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusRegistered, out.Status)
	assert.True(t, out.MailSent())
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, store.ErrAccountAlreadyExists)

	_, err := f.svc.Register(ctx, models.RegisterCommand{Identity: 2, Username: "alice", Password: "pw2", Email: "b@y.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
	assert.NotErrorIs(t, err, ErrStorage)
}

func TestAuthService_Register_MailFailureKeepsAccount(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{Identity: 1, Email: "a@x.com"}, nil)
	f.mailer.EXPECT().Send(ctx, "a@x.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	out, err := f.svc.Register(ctx, models.RegisterCommand{Identity: 1, Username: "alice", Password: "pw1", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusRegistered, out.Status)
	assert.False(t, out.MailSent())
	assert.ErrorIs(t, out.MailErr, ErrMailNotSent)
}

func TestAuthService_Register_StorageError(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, store.ErrExecutingQuery)

	_, err := f.svc.Register(ctx, models.RegisterCommand{Identity: 1, Username: "alice", Password: "pw1", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestAuthService_Register_UsesPepper(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	mailer := mock.NewMockMailer(ctrl)
	svc := NewAuthService(repo, mock.NewMockOTPLedger(ctrl), mailer, config.App{PasswordHashKey: "pepper"}, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
		assert.Equal(t, utils.HashString("pw", "pepper"), a.PasswordHash)
		assert.NotEqual(t, sha("pw"), a.PasswordHash)
		return a, nil
	})
	mailer.EXPECT().Send(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Register(ctx, models.RegisterCommand{Identity: 1, Username: "u", Password: "pw", Email: "e@x"})
	require.NoError(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Verified(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	gomock.InOrder(
		f.repo.EXPECT().FindByIdentityAndCredentials(ctx, int64(1), "alice", sha("pw1")).
			Return(models.Account{Identity: 1, Username: "alice", IsVerified: true}, nil),
		f.repo.EXPECT().SetLoggedIn(ctx, int64(1), true).Return(nil),
	)

	out, err := f.svc.Login(ctx, models.LoginCommand{Identity: 1, Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusLoggedIn, out.Status)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().FindByIdentityAndCredentials(ctx, int64(1), "alice", sha("wrong")).
		Return(models.Account{}, store.ErrAccountNotFound)

	_, err := f.svc.Login(ctx, models.LoginCommand{Identity: 1, Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnverifiedIssuesOTP(t *testing.T) {
	var issued atomic.Int32
	f := newAuthFixture(t, config.VerifyOTPStrict, WithOTPObserver(func() { issued.Add(1) }))
	ctx := context.Background()

	gomock.InOrder(
		f.repo.EXPECT().FindByIdentityAndCredentials(ctx, int64(1), "alice", sha("pw1")).
			Return(models.Account{Identity: 1, Username: "alice", Email: "a@x.com"}, nil),
		f.ledger.EXPECT().Issue("a@x.com").Return(123456, nil),
		f.ledger.EXPECT().TTL().Return(300*time.Second),
		f.mailer.EXPECT().Send(ctx, "a@x.com", otpSubject, "Your OTP code is 123456. It is valid for 5 minutes.").Return(nil),
	)

	out, err := f.svc.Login(ctx, models.LoginCommand{Identity: 1, Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusOTPRequired, out.Status)
	assert.True(t, out.MailSent())
	assert.Equal(t, int32(1), issued.Load())
}

func TestAuthService_Login_UnverifiedMailFailure(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().FindByIdentityAndCredentials(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Account{Identity: 1, Email: "a@x.com"}, nil)
	f.ledger.EXPECT().Issue("a@x.com").Return(111111, nil)
	f.ledger.EXPECT().TTL().Return(300 * time.Second)
	f.mailer.EXPECT().Send(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("refused"))

	out, err := f.svc.Login(ctx, models.LoginCommand{Identity: 1, Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusOTPRequired, out.Status)
	assert.ErrorIs(t, out.MailErr, ErrMailNotSent)
}

func TestAuthService_Login_IssueFailure(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().FindByIdentityAndCredentials(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Account{Identity: 1, Email: "a@x.com"}, nil)
	f.ledger.EXPECT().Issue("a@x.com").Return(0, errors.New("entropy exhausted"))

	_, err := f.svc.Login(ctx, models.LoginCommand{Identity: 1, Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, ErrOTPNotIssued)
}

func TestAuthService_Login_SetLoggedInFails(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().FindByIdentityAndCredentials(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Account{Identity: 1, IsVerified: true}, nil)
	f.repo.EXPECT().SetLoggedIn(ctx, int64(1), true).Return(store.ErrExecutingQuery)

	_, err := f.svc.Login(ctx, models.LoginCommand{Identity: 1, Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, ErrStorage)
}

// ── RequestOTP / VerifyOTP ───────────────────────────────────────────────────

func TestAuthService_RequestOTP(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.ledger.EXPECT().Issue("a@x.com").Return(654321, nil)
	f.ledger.EXPECT().TTL().Return(90 * time.Second)
	f.mailer.EXPECT().Send(ctx, "a@x.com", otpSubject, "Your OTP code is 654321. It is valid for 90 seconds.").Return(nil)

	out, err := f.svc.RequestOTP(ctx, models.RequestOTPCommand{Identity: 7, Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusOTPSent, out.Status)
}

func TestAuthService_VerifyOTP_Strict(t *testing.T) {
	ctx := context.Background()
	cmd := models.VerifyOTPCommand{Identity: 1, Email: "a@x.com", Code: "123456"}

	t.Run("valid and bound", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.ledger.EXPECT().Verify("a@x.com", "123456").Return(true)
		f.repo.EXPECT().ConfirmOTP(ctx, int64(1), "a@x.com", true).Return(true, nil)

		out, err := f.svc.VerifyOTP(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, models.AuthStatusOTPVerified, out.Status)
	})

	t.Run("valid but email of another account", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.ledger.EXPECT().Verify("a@x.com", "123456").Return(true)
		f.repo.EXPECT().ConfirmOTP(ctx, int64(1), "a@x.com", true).Return(false, nil)

		_, err := f.svc.VerifyOTP(ctx, cmd)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("invalid code touches nothing", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.ledger.EXPECT().Verify("a@x.com", "123456").Return(false)

		_, err := f.svc.VerifyOTP(ctx, cmd)
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.ledger.EXPECT().Verify("a@x.com", "123456").Return(true)
		f.repo.EXPECT().ConfirmOTP(ctx, int64(1), "a@x.com", true).Return(false, store.ErrExecutingQuery)

		_, err := f.svc.VerifyOTP(ctx, cmd)
		assert.ErrorIs(t, err, ErrStorage)
	})
}

func TestAuthService_VerifyOTP_Legacy(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, config.VerifyOTPLegacy)

	f.ledger.EXPECT().Verify("b@y.com", "123456").Return(true)
	f.repo.EXPECT().ConfirmOTP(ctx, int64(1), "b@y.com", false).Return(false, nil)

	out, err := f.svc.VerifyOTP(ctx, models.VerifyOTPCommand{Identity: 1, Email: "b@y.com", Code: "123456"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusOTPVerified, out.Status)
}

// ── Logout / Delete ──────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	f.repo.EXPECT().SetLoggedIn(ctx, int64(1), false).Return(nil).Times(2)

	for range 2 {
		out, err := f.svc.Logout(ctx, models.LogoutCommand{Identity: 1})
		require.NoError(t, err)
		assert.Equal(t, models.AuthStatusLoggedOut, out.Status)
	}
}

func TestAuthService_Delete(t *testing.T) {
	ctx := context.Background()
	cmd := models.DeleteCommand{Identity: 1, Username: "alice", Password: "pw1", Email: "a@x.com"}

	t.Run("match", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		gomock.InOrder(
			f.repo.EXPECT().DeleteAccount(ctx, int64(1), "alice", "a@x.com", sha("pw1")).Return(true, nil),
			f.mailer.EXPECT().Send(ctx, "a@x.com", deletionSubject,
				"Dear alice,\n\nYour account has been successfully deleted.\n\nBest regards,\nYour Team").Return(nil),
		)

		out, err := f.svc.Delete(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, models.AuthStatusDeleted, out.Status)
		assert.True(t, out.MailSent())
	})

	t.Run("mismatch", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.repo.EXPECT().DeleteAccount(ctx, int64(1), "alice", "a@x.com", sha("pw1")).Return(false, nil)

		_, err := f.svc.Delete(ctx, cmd)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("mail failure keeps deletion", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.repo.EXPECT().DeleteAccount(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.mailer.EXPECT().Send(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		out, err := f.svc.Delete(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, models.AuthStatusDeleted, out.Status)
		assert.ErrorIs(t, out.MailErr, ErrMailNotSent)
	})
}

// ── RecoverUsername / ResetPassword ──────────────────────────────────────────

func TestAuthService_RecoverUsername(t *testing.T) {
	ctx := context.Background()
	cmd := models.RecoverUsernameCommand{Identity: 9, Email: "a@x.com"}

	tests := []struct {
		name     string
		account  models.Account
		err      error
		wantErr  error
		wantName string
	}{
		{name: "logged in", account: models.Account{Username: "alice", IsLoggedIn: true}, wantName: "alice"},
		{name: "logged out", account: models.Account{Username: "alice"}, wantErr: ErrOTPRequired},
		{name: "unknown email", err: store.ErrAccountNotFound, wantErr: ErrOTPRequired},
		{name: "storage", err: store.ErrScanningRow, wantErr: ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, config.VerifyOTPStrict)
			f.repo.EXPECT().FindByEmail(ctx, "a@x.com").Return(tt.account, tt.err)

			out, err := f.svc.RecoverUsername(ctx, cmd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.AuthStatusUsernameRecovered, out.Status)
			assert.Equal(t, tt.wantName, out.Username)
		})
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	cmd := models.ResetPasswordCommand{Identity: 9, Email: "a@x.com", NewPassword: "new"}

	t.Run("gate open", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.repo.EXPECT().ResetPasswordHash(ctx, "a@x.com", sha("new")).Return(int64(2), nil)

		out, err := f.svc.ResetPassword(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, models.AuthStatusPasswordReset, out.Status)
	})

	t.Run("gate closed", func(t *testing.T) {
		f := newAuthFixture(t, config.VerifyOTPStrict)
		f.repo.EXPECT().ResetPasswordHash(ctx, "a@x.com", sha("new")).Return(int64(0), nil)

		_, err := f.svc.ResetPassword(ctx, cmd)
		assert.ErrorIs(t, err, ErrOTPRequired)
	})
}

// ── RequireSession ───────────────────────────────────────────────────────────

func TestAuthService_RequireSession(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		account models.Account
		err     error
		wantErr error
	}{
		{name: "active", account: models.Account{IsLoggedIn: true}},
		{name: "inactive", account: models.Account{}, wantErr: ErrNotLoggedIn},
		{name: "no account", err: store.ErrAccountNotFound, wantErr: ErrNotLoggedIn},
		{name: "storage", err: store.ErrExecutingQuery, wantErr: ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, config.VerifyOTPStrict)
			f.repo.EXPECT().FindByIdentity(ctx, int64(5)).Return(tt.account, tt.err)

			err := f.svc.RequireSession(ctx, 5)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Concurrency ──────────────────────────────────────────────────────────────

func TestAuthService_SameIdentitySerializes(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	var inFlight, maxInFlight atomic.Int32
	f.repo.EXPECT().SetLoggedIn(ctx, int64(1), false).DoAndReturn(func(context.Context, int64, bool) error {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil
	}).Times(20)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Logout(ctx, models.LogoutCommand{Identity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Zero(t, f.svc.locks.size())
}

func TestAuthService_DifferentIdentitiesRunInParallel(t *testing.T) {
	f := newAuthFixture(t, config.VerifyOTPStrict)
	ctx := context.Background()

	release := make(chan struct{})
	entered := make(chan int64, 2)
	f.repo.EXPECT().SetLoggedIn(ctx, gomock.Any(), false).DoAndReturn(func(_ context.Context, id int64, _ bool) error {
		entered <- id
		<-release
		return nil
	}).Times(2)

	var wg sync.WaitGroup
	for _, id := range []int64{1, 2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.Logout(ctx, models.LogoutCommand{Identity: id})
		}()
	}

	// Both calls must be inside the repository at the same time.
	got := map[int64]bool{<-entered: true, <-entered: true}
	close(release)
	wg.Wait()

	assert.Len(t, got, 2)
}
