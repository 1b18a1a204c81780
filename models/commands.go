// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Command names understood by the bot. The leading slash is stripped by the
// parser before lookup.
const (
	CommandStart           = "start"
	CommandHelp            = "help"
	CommandRegister        = "register"
	CommandLogin           = "login"
	CommandLogout          = "logout"
	CommandDelete          = "delete"
	CommandRequestOTP      = "request_otp"
	CommandVerifyOTP       = "verify_otp"
	CommandRecoverUsername = "recover_username"
	CommandResetPassword   = "reset_password"
	CommandCoin            = "coin"
	CommandStock           = "stock"
	CommandForex           = "forex"
	CommandPredict         = "predict"
	CommandMarket          = "market"
	CommandFinanceNews     = "finance_news"
	CommandBudget          = "budget_highlights"
)

// RegisterCommand creates a new account for Identity.
type RegisterCommand struct {
	Identity int64
	Username string
	Password string
	Email    string
}

// LoginCommand authenticates Identity with a username and password.
type LoginCommand struct {
	Identity int64
	Username string
	Password string
}

// LogoutCommand clears the session flag of Identity.
type LogoutCommand struct {
	Identity int64
}

// DeleteCommand removes the account of Identity. All four fields must match
// the stored row.
type DeleteCommand struct {
	Identity int64
	Username string
	Password string
	Email    string
}

// RequestOTPCommand asks for a fresh one-time code to be mailed to Email.
type RequestOTPCommand struct {
	Identity int64
	Email    string
}

// VerifyOTPCommand submits Code for the challenge bound to Email.
// Code is kept as text; a non-numeric value simply fails verification.
type VerifyOTPCommand struct {
	Identity int64
	Email    string
	Code     string
}

// RecoverUsernameCommand reveals the username bound to Email once the
// matched account has an active session.
type RecoverUsernameCommand struct {
	Identity int64
	Email    string
}

// ResetPasswordCommand overwrites the password of every account bound to
// Email once the matched account has an active session.
type ResetPasswordCommand struct {
	Identity    int64
	Email       string
	NewPassword string
}
