// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// request carries no "Authorization" header at all.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
