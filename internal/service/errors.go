package service

import "errors"

// Auth failures. They are reported to the caller with a fixed message that
// never tells which field was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired otp")

	// ErrOTPRequired is returned by username recovery and password reset
	// when the account bound to the email has no active session.
	ErrOTPRequired = errors.New("otp verification required")

	// ErrNotLoggedIn is returned by RequireSession for callers without an
	// active session.
	ErrNotLoggedIn = errors.New("caller is not logged in")
)

// ErrMailNotSent is placed in models.AuthOutcome.MailErr when the message
// attached to a transition was not delivered. The transition is kept.
var ErrMailNotSent = errors.New("mail was not sent")

// ErrStorage wraps every persistence failure. The detail is logged, the
// caller only learns that something went wrong.
var ErrStorage = errors.New("storage failure")

var (
	ErrOTPNotIssued = errors.New("otp was not issued")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
