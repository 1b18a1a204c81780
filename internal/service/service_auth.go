// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/mailer"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/store"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// authService is the concrete implementation of AuthService.
//
// Account states are Unregistered, Registered-Unverified, Verified-LoggedOut
// and Verified-LoggedIn. Each transition is one conditional statement in
// accountRepository; commands of the same identity are additionally
// serialized through locks, commands of different identities run in
// parallel.
type authService struct {
	// accountRepository is the persistent account table.
	accountRepository store.AccountRepository

	// otpLedger holds the pending one-time codes keyed by email.
	otpLedger store.OTPLedger

	// mailer delivers codes and confirmations. Delivery failures never undo
	// the transition they belong to.
	mailer mailer.Mailer

	// hash computes password digests. Must stay the same for the lifetime
	// of the stored accounts.
	hash PasswordHasher

	// bindOTPEmail selects the strict verify_otp mode: only an account that
	// is both the caller's and bound to the submitted email is confirmed.
	bindOTPEmail bool

	// onOTPIssued is called once per stored challenge.
	onOTPIssued func()

	locks *identityLocks

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// AuthServiceOption customizes NewAuthService.
type AuthServiceOption func(*authService)

// WithOTPObserver registers fn to be called every time a code is issued.
func WithOTPObserver(fn func()) AuthServiceOption {
	return func(a *authService) {
		if fn != nil {
			a.onOTPIssued = fn
		}
	}
}

// NewAuthService constructs the login state machine over the given
// collaborators. cfg supplies the password pepper and the verify_otp mode;
// an unknown mode falls back to strict.
func NewAuthService(
	accountRepository store.AccountRepository,
	otpLedger store.OTPLedger,
	mailer mailer.Mailer,
	cfg config.App,
	logger *logger.Logger,
	opts ...AuthServiceOption,
) AuthService {
	a := &authService{
		accountRepository: accountRepository,
		otpLedger:         otpLedger,
		mailer:            mailer,
		hash:              NewPasswordHasher(cfg.PasswordHashKey),
		bindOTPEmail:      cfg.VerifyOTPMode != config.VerifyOTPLegacy,
		onOTPIssued:       func() {},
		locks:             newIdentityLocks(),
		logger:            logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Register creates an unverified account and mails a confirmation.
//
// A taken username or identity yields store.ErrAccountAlreadyExists and
// changes nothing. A failed confirmation mail is reported in MailErr; the
// account stays.
func (a *authService) Register(ctx context.Context, cmd models.RegisterCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Identity:     cmd.Identity,
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: a.hash(cmd.Password),
	})
	if errors.Is(err, store.ErrAccountAlreadyExists) {
		log.Info().Int64("identity", cmd.Identity).Str("username", cmd.Username).Msg("registration rejected, account exists")
		return models.AuthOutcome{}, fmt.Errorf("registration rejected: %w", err)
	}
	if err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "account creation failed", err)
	}

	log.Info().Int64("identity", account.Identity).Msg("account registered")

	return models.AuthOutcome{
		Status:  models.AuthStatusRegistered,
		MailErr: a.send(ctx, account.Email, registrationSubject, registrationBody),
	}, nil
}

// Login opens a session for a verified account. An unverified account is
// not logged in: a code is issued for its email instead and the outcome is
// AuthStatusOTPRequired.
func (a *authService) Login(ctx context.Context, cmd models.LoginCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindByIdentityAndCredentials(ctx, cmd.Identity, cmd.Username, a.hash(cmd.Password))
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Info().Int64("identity", cmd.Identity).Msg("login rejected")
		return models.AuthOutcome{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "account lookup failed", err)
	}

	if !account.IsVerified {
		log.Info().Int64("identity", cmd.Identity).Msg("login deferred until otp verification")
		return a.issueOTP(ctx, account.Email, models.AuthStatusOTPRequired)
	}

	if err = a.accountRepository.SetLoggedIn(ctx, cmd.Identity, true); err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "opening session failed", err)
	}

	log.Info().Int64("identity", cmd.Identity).Msg("logged in")
	return models.AuthOutcome{Status: models.AuthStatusLoggedIn}, nil
}

// RequestOTP issues a fresh code for the email and mails it. The email does
// not have to belong to an account.
func (a *authService) RequestOTP(ctx context.Context, cmd models.RequestOTPCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()

	return a.issueOTP(ctx, cmd.Email, models.AuthStatusOTPSent)
}

// VerifyOTP checks the code against the ledger and, on a match, marks the
// caller's account verified and logged in.
//
// In strict mode the caller's account must also be bound to the submitted
// email, otherwise the code is treated as invalid. In legacy mode the
// caller's flags are set whatever the email, and success is reported even
// when the caller has no account.
func (a *authService) VerifyOTP(ctx context.Context, cmd models.VerifyOTPCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()
	log := logger.FromContext(ctx)

	if !a.otpLedger.Verify(cmd.Email, cmd.Code) {
		log.Info().Int64("identity", cmd.Identity).Msg("otp rejected")
		return models.AuthOutcome{}, ErrInvalidOTP
	}

	confirmed, err := a.accountRepository.ConfirmOTP(ctx, cmd.Identity, cmd.Email, a.bindOTPEmail)
	if err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "otp confirmation failed", err)
	}
	if !confirmed && a.bindOTPEmail {
		log.Info().Int64("identity", cmd.Identity).Msg("otp email is not bound to caller account")
		return models.AuthOutcome{}, ErrInvalidOTP
	}

	log.Info().Int64("identity", cmd.Identity).Bool("account_updated", confirmed).Msg("otp verified")
	return models.AuthOutcome{Status: models.AuthStatusOTPVerified}, nil
}

// Logout clears the session flag. Unknown identities are a no-op.
func (a *authService) Logout(ctx context.Context, cmd models.LogoutCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()

	if err := a.accountRepository.SetLoggedIn(ctx, cmd.Identity, false); err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "closing session failed", err)
	}

	logger.FromContext(ctx).Info().Int64("identity", cmd.Identity).Msg("logged out")
	return models.AuthOutcome{Status: models.AuthStatusLoggedOut}, nil
}

// Delete removes the account when identity, username, password and email all
// match, then mails a confirmation. The removal is final even when the mail
// fails.
func (a *authService) Delete(ctx context.Context, cmd models.DeleteCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()
	log := logger.FromContext(ctx)

	deleted, err := a.accountRepository.DeleteAccount(ctx, cmd.Identity, cmd.Username, cmd.Email, a.hash(cmd.Password))
	if err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "account deletion failed", err)
	}
	if !deleted {
		log.Info().Int64("identity", cmd.Identity).Msg("deletion rejected")
		return models.AuthOutcome{}, ErrInvalidCredentials
	}

	log.Info().Int64("identity", cmd.Identity).Msg("account deleted")

	return models.AuthOutcome{
		Status:  models.AuthStatusDeleted,
		MailErr: a.send(ctx, cmd.Email, deletionSubject, deletionBody(cmd.Username)),
	}, nil
}

// RecoverUsername reveals the username of the first account bound to the
// email, provided that account has an active session.
func (a *authService) RecoverUsername(ctx context.Context, cmd models.RecoverUsernameCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()

	account, err := a.accountRepository.FindByEmail(ctx, cmd.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.AuthOutcome{}, ErrOTPRequired
	}
	if err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "account lookup by email failed", err)
	}
	if !account.IsLoggedIn {
		return models.AuthOutcome{}, ErrOTPRequired
	}

	logger.FromContext(ctx).Info().Int64("identity", cmd.Identity).Int64("account", account.Identity).Msg("username recovered")
	return models.AuthOutcome{Status: models.AuthStatusUsernameRecovered, Username: account.Username}, nil
}

// ResetPassword overwrites the password of every account bound to the email
// when the first of them has an active session.
func (a *authService) ResetPassword(ctx context.Context, cmd models.ResetPasswordCommand) (models.AuthOutcome, error) {
	defer a.locks.lock(cmd.Identity)()

	updated, err := a.accountRepository.ResetPasswordHash(ctx, cmd.Email, a.hash(cmd.NewPassword))
	if err != nil {
		return models.AuthOutcome{}, a.storageError(ctx, "password reset failed", err)
	}
	if updated == 0 {
		return models.AuthOutcome{}, ErrOTPRequired
	}

	logger.FromContext(ctx).Info().Int64("identity", cmd.Identity).Int64("accounts", updated).Msg("password reset")
	return models.AuthOutcome{Status: models.AuthStatusPasswordReset}, nil
}

func (a *authService) RequireSession(ctx context.Context, identity int64) error {
	account, err := a.accountRepository.FindByIdentity(ctx, identity)
	if errors.Is(err, store.ErrAccountNotFound) {
		return ErrNotLoggedIn
	}
	if err != nil {
		return a.storageError(ctx, "session lookup failed", err)
	}
	if !account.IsLoggedIn {
		return ErrNotLoggedIn
	}

	return nil
}

// issueOTP stores a fresh challenge for email, then mails the code. The
// challenge is kept when delivery fails.
func (a *authService) issueOTP(ctx context.Context, email string, status models.AuthStatus) (models.AuthOutcome, error) {
	code, err := a.otpLedger.Issue(email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("otp generation failed")
		return models.AuthOutcome{}, fmt.Errorf("%w: %w", ErrOTPNotIssued, err)
	}
	a.onOTPIssued()

	return models.AuthOutcome{
		Status:  status,
		MailErr: a.send(ctx, email, otpSubject, otpBody(code, a.otpLedger.TTL())),
	}, nil
}

func (a *authService) send(ctx context.Context, to, subject, body string) error {
	if err := a.mailer.Send(ctx, to, subject, body); err != nil {
		logger.FromContext(ctx).Err(err).Str("subject", subject).Msg("mail delivery failed")
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}

	return nil
}

func (a *authService) storageError(ctx context.Context, msg string, err error) error {
	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%w: %s: %w", ErrStorage, msg, err)
}
