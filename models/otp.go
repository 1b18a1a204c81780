// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Bounds of a one-time code. Codes are always six digits.
const (
	OTPMinCode = 100000
	OTPMaxCode = 999999
)

// DefaultOTPTTL is the validity window of a freshly issued challenge.
const DefaultOTPTTL = 300 * time.Second

// OTPChallenge is a pending one-time code bound to an email address.
type OTPChallenge struct {
	// Code is a six digit number in [OTPMinCode, OTPMaxCode].
	Code int

	// ExpiresAt is fixed at issue time. The challenge is usable strictly
	// before this instant.
	ExpiresAt time.Time
}

// Expired reports whether the challenge can no longer be used at now.
func (c OTPChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Matches reports whether code is accepted at now.
func (c OTPChallenge) Matches(code int, now time.Time) bool {
	return !c.Expired(now) && c.Code == code
}
