package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// newSQLiteRepo opens a migrated in-memory database. Each insert gets a
// creation time one second after the previous one.
func newSQLiteRepo(t *testing.T) (*accountRepository, *DB) {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	var mu sync.Mutex
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := NewAccountRepository(db, logger.Nop()).(*accountRepository)
	repo.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}

	return repo, db
}

func countRows(t *testing.T, db *DB, where string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM accounts WHERE "+where, args...).Scan(&n))
	return n
}

func TestSQLite_UsernameConflict(t *testing.T) {
	repo, db := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, models.Account{Identity: 1, Username: "alice", Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.CreateAccount(ctx, models.Account{Identity: 2, Username: "alice", Email: "b@y.com", PasswordHash: "h2"})
	require.ErrorIs(t, err, ErrAccountAlreadyExists)

	assert.Equal(t, 1, countRows(t, db, "username = ?", "alice"))
}

func TestSQLite_IdentityConflict(t *testing.T) {
	repo, db := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, models.Account{Identity: 1, Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.CreateAccount(ctx, models.Account{Identity: 1, Username: "bob", Email: "b@y.com", PasswordHash: "h"})
	require.ErrorIs(t, err, ErrAccountAlreadyExists)

	assert.Equal(t, 0, countRows(t, db, "username = ?", "bob"))
}

func TestSQLite_LoginLookupAndFlags(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, models.Account{Identity: 1, Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.FindByIdentityAndCredentials(ctx, 1, "alice", "wrong")
	require.ErrorIs(t, err, ErrAccountNotFound)
	_, err = repo.FindByIdentityAndCredentials(ctx, 2, "alice", "h")
	require.ErrorIs(t, err, ErrAccountNotFound)

	require.NoError(t, repo.SetVerified(ctx, 1, true))
	require.NoError(t, repo.SetLoggedIn(ctx, 1, true))
	require.NoError(t, repo.SetLoggedIn(ctx, 1, true))

	account, err := repo.FindByIdentityAndCredentials(ctx, 1, "alice", "h")
	require.NoError(t, err)
	assert.True(t, account.IsVerified)
	assert.True(t, account.IsLoggedIn)
	assert.False(t, account.CreatedAt.IsZero())

	require.NoError(t, repo.SetLoggedIn(ctx, 1, false))
	account, err = repo.FindByIdentity(ctx, 1)
	require.NoError(t, err)
	assert.False(t, account.IsLoggedIn)

	// unknown identity is a no-op
	require.NoError(t, repo.SetLoggedIn(ctx, 99, false))
}

func TestSQLite_ConfirmOTP(t *testing.T) {
	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, models.Account{Identity: 1, Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	ok, err := repo.ConfirmOTP(ctx, 1, "other@x.com", true)
	require.NoError(t, err)
	assert.False(t, ok)

	account, err := repo.FindByIdentity(ctx, 1)
	require.NoError(t, err)
	assert.False(t, account.IsLoggedIn)

	ok, err = repo.ConfirmOTP(ctx, 1, "a@x.com", true)
	require.NoError(t, err)
	assert.True(t, ok)

	account, err = repo.FindByIdentity(ctx, 1)
	require.NoError(t, err)
	assert.True(t, account.IsLoggedIn)
	assert.True(t, account.IsVerified)
}

func TestSQLite_EmailTieBreakAndReset(t *testing.T) {
	repo, db := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, models.Account{Identity: 20, Username: "older", Email: "shared@x.com", PasswordHash: "h1"})
	require.NoError(t, err)
	_, err = repo.CreateAccount(ctx, models.Account{Identity: 10, Username: "newer", Email: "shared@x.com", PasswordHash: "h2"})
	require.NoError(t, err)

	first, err := repo.FindByEmail(ctx, "shared@x.com")
	require.NoError(t, err)
	assert.Equal(t, "older", first.Username, "creation order wins over identity")

	n, err := repo.ResetPasswordHash(ctx, "shared@x.com", "reset")
	require.NoError(t, err)
	assert.Zero(t, n, "no session, no reset")

	require.NoError(t, repo.SetLoggedIn(ctx, 10, true))
	n, err = repo.ResetPasswordHash(ctx, "shared@x.com", "reset")
	require.NoError(t, err)
	assert.Zero(t, n, "only the first account's session opens the gate")

	require.NoError(t, repo.SetLoggedIn(ctx, 20, true))
	n, err = repo.ResetPasswordHash(ctx, "shared@x.com", "reset")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 2, countRows(t, db, "password_hash = ?", "reset"))

	n, err = repo.ResetPasswordHash(ctx, "nobody@x.com", "reset")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLite_DeleteRequiresFourWayMatch(t *testing.T) {
	repo, db := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, models.Account{Identity: 1, Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	mismatches := []struct {
		identity                  int64
		username, email, password string
	}{
		{2, "alice", "a@x.com", "h"},
		{1, "bob", "a@x.com", "h"},
		{1, "alice", "b@x.com", "h"},
		{1, "alice", "a@x.com", "x"},
	}
	for _, m := range mismatches {
		deleted, err := repo.DeleteAccount(ctx, m.identity, m.username, m.email, m.password)
		require.NoError(t, err)
		assert.False(t, deleted)
	}
	assert.Equal(t, 1, countRows(t, db, "identity = ?", 1))

	deleted, err := repo.DeleteAccount(ctx, 1, "alice", "a@x.com", "h")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, countRows(t, db, "identity = ?", 1))

	_, err = repo.FindByIdentity(ctx, 1)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSQLite_ConcurrentDistinctIdentities(t *testing.T) {
	repo, db := newSQLiteRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := repo.CreateAccount(ctx, models.Account{
				Identity:     id,
				Username:     "user" + string(rune('a'+id)),
				Email:        "u@x.com",
				PasswordHash: "h",
			})
			assert.NoError(t, err)
			assert.NoError(t, repo.SetLoggedIn(ctx, id, true))
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 20, countRows(t, db, "is_logged_in = ?", true))
}
