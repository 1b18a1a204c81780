package store

import (
	"context"
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the persistent account table. Every mutating method
// is a single statement whose match predicate lives in the query, so no
// check-then-act window exists between reading and writing a row.
type AccountRepository interface {
	// CreateAccount inserts a new row. A taken username or identity yields
	// [ErrAccountAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindByIdentityAndCredentials returns [ErrAccountNotFound] when the
	// identity, username and hash do not all match one row.
	FindByIdentityAndCredentials(ctx context.Context, identity int64, username, passwordHash string) (models.Account, error)
	FindByIdentity(ctx context.Context, identity int64) (models.Account, error)
	// FindByEmail returns the first account bound to email ordered by
	// creation time, then identity.
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	SetLoggedIn(ctx context.Context, identity int64, loggedIn bool) error
	SetVerified(ctx context.Context, identity int64, verified bool) error
	// ConfirmOTP opens a verified session for identity. When bindEmail is set
	// the row must also carry email. Reports whether a row was updated.
	ConfirmOTP(ctx context.Context, identity int64, email string, bindEmail bool) (bool, error)
	// ResetPasswordHash overwrites the hash of every account bound to email,
	// provided the first such account has an active session. Returns the
	// number of rows updated.
	ResetPasswordHash(ctx context.Context, email, passwordHash string) (int64, error)
	// DeleteAccount removes the row only on an exact four-way match and
	// reports whether it did.
	DeleteAccount(ctx context.Context, identity int64, username, email, passwordHash string) (bool, error)
}

// OTPLedger holds at most one pending challenge per email.
type OTPLedger interface {
	// Issue replaces any challenge for email with a fresh code and returns it.
	Issue(email string) (int, error)
	// Verify reports whether code matches the live challenge for email.
	// The challenge is not consumed.
	Verify(email, code string) bool
	// PurgeExpired drops challenges expired at now and returns how many.
	PurgeExpired(now time.Time) int
	// TTL is the validity window of issued codes.
	TTL() time.Duration
}
