package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is matched by every [UsageError].
	ErrUsage = errors.New("invalid command usage")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidIdentity = errors.New("invalid caller identity")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyCode       = errors.New("otp code is required")
	ErrWrongArgCount   = errors.New("wrong number of arguments")
)

// UsageError reports a malformed command. Usage is the line to show the
// caller, Err the specific defect.
type UsageError struct {
	Command string
	Usage   string
	Err     error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("/%s: %v; usage: %s", e.Command, e.Err, e.Usage)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUsage) true for any UsageError.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}
