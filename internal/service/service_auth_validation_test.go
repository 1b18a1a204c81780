package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/mock"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/validators"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

func newValidated(t *testing.T) (AuthService, *mock.MockAuthService) {
	t.Helper()
	inner := mock.NewMockAuthService(gomock.NewController(t))
	return NewAuthValidationService().Wrap(inner), inner
}

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	svc, _ := newValidated(t)
	ctx := context.Background()

	calls := map[string]func() error{
		"register blank email": func() error {
			_, err := svc.Register(ctx, models.RegisterCommand{Identity: 1, Username: "a", Password: "p", Email: " "})
			return err
		},
		"login no identity": func() error {
			_, err := svc.Login(ctx, models.LoginCommand{Username: "a", Password: "p"})
			return err
		},
		"request otp empty": func() error {
			_, err := svc.RequestOTP(ctx, models.RequestOTPCommand{Identity: 1})
			return err
		},
		"verify otp empty code": func() error {
			_, err := svc.VerifyOTP(ctx, models.VerifyOTPCommand{Identity: 1, Email: "a@x"})
			return err
		},
		"logout no identity": func() error {
			_, err := svc.Logout(ctx, models.LogoutCommand{})
			return err
		},
		"delete no password": func() error {
			_, err := svc.Delete(ctx, models.DeleteCommand{Identity: 1, Username: "a", Email: "a@x"})
			return err
		},
		"recover empty": func() error {
			_, err := svc.RecoverUsername(ctx, models.RecoverUsernameCommand{Identity: 1})
			return err
		},
		"reset empty password": func() error {
			_, err := svc.ResetPassword(ctx, models.ResetPasswordCommand{Identity: 1, Email: "a@x"})
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.ErrorIs(t, err, validators.ErrUsage)
		})
	}
}

func TestAuthValidationService_PassesValidPayloads(t *testing.T) {
	svc, inner := newValidated(t)
	ctx := context.Background()

	cmd := models.LoginCommand{Identity: 1, Username: "alice", Password: "pw1"}
	inner.EXPECT().Login(ctx, cmd).Return(models.AuthOutcome{Status: models.AuthStatusLoggedIn}, nil)

	out, err := svc.Login(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, models.AuthStatusLoggedIn, out.Status)
}

func TestAuthValidationService_RequireSession(t *testing.T) {
	svc, inner := newValidated(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.RequireSession(ctx, 0), ErrNotLoggedIn)

	inner.EXPECT().RequireSession(ctx, int64(3)).Return(nil)
	assert.NoError(t, svc.RequireSession(ctx, 3))
}
