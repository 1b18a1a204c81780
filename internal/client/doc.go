// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal chat client runtime.
//
// It signs the caller token, connects the server adapter and runs the chat
// screen as a single process lifecycle.
package client
