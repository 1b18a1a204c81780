// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks typed command payloads once, at the transport
// boundary, before they reach the auth engine.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values.
//     Supports optional field-level scoping for targeted validation.
//   - UsageError: a malformed command. It carries the usage line the caller
//     should be shown and matches [ErrUsage].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
