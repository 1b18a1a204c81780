// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthStatus names the state transition an auth operation performed.
type AuthStatus int

const (
	AuthStatusUnknown AuthStatus = iota
	AuthStatusRegistered
	AuthStatusLoggedIn
	// AuthStatusOTPRequired is reported by login for an unverified account:
	// no session was opened and a code was issued for the account email.
	AuthStatusOTPRequired
	AuthStatusOTPSent
	AuthStatusOTPVerified
	AuthStatusLoggedOut
	AuthStatusDeleted
	AuthStatusUsernameRecovered
	AuthStatusPasswordReset
)

// AuthOutcome is the success payload of an auth operation.
type AuthOutcome struct {
	// Status is the transition that happened.
	Status AuthStatus

	// Username is set by username recovery.
	Username string

	// MailErr is non-nil when the message attached to the transition could
	// not be delivered. The transition itself is kept.
	MailErr error
}

// MailSent reports whether the attached message, if any, went out.
func (o AuthOutcome) MailSent() bool {
	return o.MailErr == nil
}
