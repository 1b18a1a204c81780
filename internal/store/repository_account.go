// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

const accountsTable = "accounts"

var accountColumns = []string{
	"identity", "username", "email", "password_hash", "is_verified", "is_logged_in", "created_at",
}

// firstByEmail selects the session flag of the account that email-keyed
// operations act on: the oldest one, identity breaking ties.
const firstByEmail = `(SELECT oldest.is_logged_in FROM accounts oldest WHERE oldest.email = ? ORDER BY oldest.created_at ASC, oldest.identity ASC LIMIT 1) = ?`

// accountRepository is the SQL implementation of [AccountRepository] for
// both PostgreSQL and SQLite. Queries are built with squirrel so only the
// placeholder format differs between engines.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] on db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateAccount inserts account and returns it with CreatedAt set. Flags
// start false whatever the input carries.
//
// Error handling:
//   - unique or primary key violation → [ErrAccountAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	account.IsVerified = false
	account.IsLoggedIn = false
	account.CreatedAt = r.now().Truncate(time.Microsecond)

	q := r.db.builder.Insert(accountsTable).
		Columns(accountColumns...).
		Values(account.Identity, account.Username, account.Email, account.PasswordHash, false, false, account.CreatedAt)

	if _, err := r.db.exec(ctx, q); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Int64("identity", account.Identity).Msg("account already exists")
			return models.Account{}, ErrAccountAlreadyExists
		}

		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func (r *accountRepository) FindByIdentityAndCredentials(ctx context.Context, identity int64, username, passwordHash string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByIdentityAndCredentials", sq.Eq{
		"identity":      identity,
		"username":      username,
		"password_hash": passwordHash,
	})
}

func (r *accountRepository) FindByIdentity(ctx context.Context, identity int64) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByIdentity", sq.Eq{"identity": identity})
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByEmail", sq.Eq{"email": email})
}

// findOne returns the first row matching where in creation order.
func (r *accountRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	q := r.db.builder.Select(accountColumns...).
		From(accountsTable).
		Where(where).
		OrderBy("created_at ASC", "identity ASC").
		Limit(1)

	var account models.Account
	err := r.db.queryRow(ctx, q, func(row *sql.Row) error {
		return row.Scan(
			&account.Identity,
			&account.Username,
			&account.Email,
			&account.PasswordHash,
			&account.IsVerified,
			&account.IsLoggedIn,
			&account.CreatedAt,
		)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrAccountNotFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// SetLoggedIn is idempotent. A missing identity is not an error.
func (r *accountRepository) SetLoggedIn(ctx context.Context, identity int64, loggedIn bool) error {
	q := r.db.builder.Update(accountsTable).
		Set("is_logged_in", loggedIn).
		Where(sq.Eq{"identity": identity})

	if _, err := r.db.exec(ctx, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.SetLoggedIn").Msg("error updating session flag")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// SetVerified is idempotent. A missing identity is not an error.
func (r *accountRepository) SetVerified(ctx context.Context, identity int64, verified bool) error {
	q := r.db.builder.Update(accountsTable).
		Set("is_verified", verified).
		Where(sq.Eq{"identity": identity})

	if _, err := r.db.exec(ctx, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.SetVerified").Msg("error updating verified flag")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ConfirmOTP sets both flags in one statement.
func (r *accountRepository) ConfirmOTP(ctx context.Context, identity int64, email string, bindEmail bool) (bool, error) {
	where := sq.Eq{"identity": identity}
	if bindEmail {
		where["email"] = email
	}

	q := r.db.builder.Update(accountsTable).
		Set("is_logged_in", true).
		Set("is_verified", true).
		Where(where)

	affected, err := r.db.exec(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.ConfirmOTP").Msg("error confirming otp")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

// ResetPasswordHash carries the session gate inside the UPDATE predicate, so
// the gate and the write observe the same state.
func (r *accountRepository) ResetPasswordHash(ctx context.Context, email, passwordHash string) (int64, error) {
	q := r.db.builder.Update(accountsTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"email": email}).
		Where(sq.Expr(firstByEmail, email, true))

	affected, err := r.db.exec(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.ResetPasswordHash").Msg("error resetting password")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, identity int64, username, email, passwordHash string) (bool, error) {
	q := r.db.builder.Delete(accountsTable).
		Where(sq.Eq{
			"identity":      identity,
			"username":      username,
			"email":         email,
			"password_hash": passwordHash,
		})

	affected, err := r.db.exec(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error deleting account")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}
