// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CommandRequest is the body of POST /api/commands. Text is the raw chat
// line, e.g. "/login alice secret".
type CommandRequest struct {
	Text string `json:"text"`
}

// CommandResponse carries the rendered bot reply.
type CommandResponse struct {
	Reply string `json:"reply"`
}
