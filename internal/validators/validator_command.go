package validators

import (
	"context"
	"strings"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldIdentity    = "identity"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldCode        = "code"
	FieldNewPassword = "new_password"
)

// CommandValidator validates the auth command payloads of the models
// package. Failures come back as [UsageError].
type CommandValidator struct{}

func NewCommandValidator() Validator {
	return &CommandValidator{}
}

func (v *CommandValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var (
		command string
		values  map[string]any
	)

	switch c := obj.(type) {
	case models.RegisterCommand:
		command, values = models.CommandRegister, map[string]any{
			FieldIdentity: c.Identity, FieldUsername: c.Username, FieldPassword: c.Password, FieldEmail: c.Email,
		}
	case models.LoginCommand:
		command, values = models.CommandLogin, map[string]any{
			FieldIdentity: c.Identity, FieldUsername: c.Username, FieldPassword: c.Password,
		}
	case models.LogoutCommand:
		command, values = models.CommandLogout, map[string]any{FieldIdentity: c.Identity}
	case models.DeleteCommand:
		command, values = models.CommandDelete, map[string]any{
			FieldIdentity: c.Identity, FieldUsername: c.Username, FieldPassword: c.Password, FieldEmail: c.Email,
		}
	case models.RequestOTPCommand:
		command, values = models.CommandRequestOTP, map[string]any{FieldIdentity: c.Identity, FieldEmail: c.Email}
	case models.VerifyOTPCommand:
		command, values = models.CommandVerifyOTP, map[string]any{
			FieldIdentity: c.Identity, FieldEmail: c.Email, FieldCode: c.Code,
		}
	case models.RecoverUsernameCommand:
		command, values = models.CommandRecoverUsername, map[string]any{FieldIdentity: c.Identity, FieldEmail: c.Email}
	case models.ResetPasswordCommand:
		command, values = models.CommandResetPassword, map[string]any{
			FieldIdentity: c.Identity, FieldEmail: c.Email, FieldNewPassword: c.NewPassword,
		}
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = commandFields[command]
	}

	for _, f := range fields {
		value, ok := values[f]
		if !ok {
			return ErrUnknownField
		}
		if err := checkField(f, value); err != nil {
			return &UsageError{Command: command, Usage: Usage(command), Err: err}
		}
	}

	return nil
}

var commandFields = map[string][]string{
	models.CommandRegister:        {FieldIdentity, FieldUsername, FieldPassword, FieldEmail},
	models.CommandLogin:           {FieldIdentity, FieldUsername, FieldPassword},
	models.CommandLogout:          {FieldIdentity},
	models.CommandDelete:          {FieldIdentity, FieldUsername, FieldPassword, FieldEmail},
	models.CommandRequestOTP:      {FieldIdentity, FieldEmail},
	models.CommandVerifyOTP:       {FieldIdentity, FieldEmail, FieldCode},
	models.CommandRecoverUsername: {FieldIdentity, FieldEmail},
	models.CommandResetPassword:   {FieldIdentity, FieldEmail, FieldNewPassword},
}

func checkField(field string, value any) error {
	switch field {
	case FieldIdentity:
		if id, _ := value.(int64); id == 0 {
			return ErrInvalidIdentity
		}
		return nil
	}

	s, _ := value.(string)
	if strings.TrimSpace(s) != "" {
		return nil
	}

	switch field {
	case FieldUsername:
		return ErrEmptyUsername
	case FieldPassword, FieldNewPassword:
		return ErrEmptyPassword
	case FieldEmail:
		return ErrEmptyEmail
	case FieldCode:
		return ErrEmptyCode
	}

	return ErrUnknownField
}
