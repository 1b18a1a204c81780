// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import (
	"strings"

	"github.com/samber/oops"
)

// Parser error codes.
const (
	CodeEmptyInput = "EMPTY_INPUT"
	CodeNotCommand = "NOT_A_COMMAND"
)

// ParsedCommand is one chat line split into a command name and its
// whitespace separated arguments.
type ParsedCommand struct {
	Name string   // command name without the leading slash or @bot suffix
	Args []string // positional arguments
	Raw  string   // original input
}

// Parse splits a chat line such as "/login@DeFiSenseiBot alice secret".
// The name is lower-cased; arguments keep their case.
func Parse(input string) (ParsedCommand, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ParsedCommand{}, oops.Code(CodeEmptyInput).Errorf("no command provided")
	}

	head := fields[0]
	if !strings.HasPrefix(head, "/") || len(head) == 1 {
		return ParsedCommand{}, oops.Code(CodeNotCommand).With("input", head).Errorf("input is not a command")
	}

	name, _, _ := strings.Cut(head[1:], "@")

	return ParsedCommand{
		Name: strings.ToLower(name),
		Args: fields[1:],
		Raw:  input,
	}, nil
}
