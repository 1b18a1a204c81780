// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a registered bot user. The row is keyed by the chat platform
// identity of the caller who registered it.
type Account struct {
	// Identity is the platform-assigned caller identifier (primary key).
	// Immutable once the account is created.
	Identity int64 `json:"identity"`

	// Username is the human-chosen display name. Unique across accounts.
	Username string `json:"username"`

	// Email is the contact address used for OTP delivery, username recovery
	// and password reset. Several accounts may share it.
	Email string `json:"email"`

	// PasswordHash is the hex digest produced by the password hasher.
	// Never serialized and never logged.
	PasswordHash string `json:"-"`

	// IsVerified becomes true after the first successful OTP challenge and
	// stays true.
	IsVerified bool `json:"is_verified"`

	// IsLoggedIn is the session flag toggled by login, logout and OTP
	// verification.
	IsLoggedIn bool `json:"is_logged_in"`

	// CreatedAt is assigned by the repository on insert. It orders accounts
	// that share an email.
	CreatedAt time.Time `json:"created_at"`
}
