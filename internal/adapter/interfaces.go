// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client talk to the bot backend.
//
// [ServerAdapter] hides the transport; the package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]). Non-2xx statuses are mapped to
// the sentinels in errors.go so callers can match them with [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter sends chat lines to the backend on behalf of one identity.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every command request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// SendCommand posts one chat line and returns the bot's reply.
	SendCommand(ctx context.Context, text string) (string, error)

	// GetServerVersion returns the version the backend reports.
	GetServerVersion(ctx context.Context) (string, error)
}
