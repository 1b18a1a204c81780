// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/adapter"
)

func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return "The server rejected the client token. Check APP_TOKEN_SIGN_KEY and APP_TOKEN_ISSUER."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
