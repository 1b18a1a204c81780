// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means the configuration enabled no transport.
	errNoServersAreCreated = errors.New("no servers are created")
	errNoServersToShutDown = errors.New("no servers to shut down")
)
