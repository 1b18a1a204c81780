package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

func TestCommandValidator_Valid(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()

	valid := []any{
		models.RegisterCommand{Identity: 1, Username: "alice", Password: "pw", Email: "a@x.com"},
		models.LoginCommand{Identity: 1, Username: "alice", Password: "pw"},
		models.LogoutCommand{Identity: 1},
		models.DeleteCommand{Identity: 1, Username: "alice", Password: "pw", Email: "a@x.com"},
		models.RequestOTPCommand{Identity: 1, Email: "a@x.com"},
		models.VerifyOTPCommand{Identity: 1, Email: "a@x.com", Code: "123456"},
		models.RecoverUsernameCommand{Identity: 1, Email: "a@x.com"},
		models.ResetPasswordCommand{Identity: 1, Email: "a@x.com", NewPassword: "new"},
	}

	for _, c := range valid {
		assert.NoError(t, v.Validate(ctx, c), "%T", c)
	}
}

func TestCommandValidator_Invalid(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()

	tests := []struct {
		name  string
		obj   any
		want  error
		usage string
	}{
		{
			name:  "register without identity",
			obj:   models.RegisterCommand{Username: "alice", Password: "pw", Email: "a@x.com"},
			want:  ErrInvalidIdentity,
			usage: "/register <username> <password> <email>",
		},
		{
			name:  "login blank password",
			obj:   models.LoginCommand{Identity: 1, Username: "alice", Password: "  "},
			want:  ErrEmptyPassword,
			usage: "/login <username> <password>",
		},
		{
			name:  "delete without email",
			obj:   models.DeleteCommand{Identity: 1, Username: "alice", Password: "pw"},
			want:  ErrEmptyEmail,
			usage: "/delete <username> <password> <email>",
		},
		{
			name:  "verify without code",
			obj:   models.VerifyOTPCommand{Identity: 1, Email: "a@x.com"},
			want:  ErrEmptyCode,
			usage: "/verify_otp <email> <otp>",
		},
		{
			name:  "reset without password",
			obj:   models.ResetPasswordCommand{Identity: 1, Email: "a@x.com"},
			want:  ErrEmptyPassword,
			usage: "/reset_password <email> <new_password>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			require.ErrorIs(t, err, ErrUsage)
			require.ErrorIs(t, err, tt.want)

			var usageErr *UsageError
			require.True(t, errors.As(err, &usageErr))
			assert.Equal(t, tt.usage, usageErr.Usage)
		})
	}
}

func TestCommandValidator_FieldScoping(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()

	cmd := models.RegisterCommand{Identity: 1, Username: "alice"}
	assert.NoError(t, v.Validate(ctx, cmd, FieldIdentity, FieldUsername))
	assert.ErrorIs(t, v.Validate(ctx, cmd, FieldEmail), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, cmd, FieldCode), ErrUnknownField)
}

func TestCommandValidator_UnsupportedType(t *testing.T) {
	err := NewCommandValidator().Validate(context.Background(), "register")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCheckArgs(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		wantErr bool
	}{
		{name: "register ok", command: models.CommandRegister, args: []string{"u", "p", "e"}},
		{name: "register short", command: models.CommandRegister, args: []string{"u", "p"}, wantErr: true},
		{name: "logout ok", command: models.CommandLogout},
		{name: "logout extra", command: models.CommandLogout, args: []string{"now"}, wantErr: true},
		{name: "forex ok", command: models.CommandForex, args: []string{"USD", "INR"}},
		{name: "verify long", command: models.CommandVerifyOTP, args: []string{"e", "1", "2"}, wantErr: true},
		{name: "help free form", command: models.CommandHelp, args: []string{"anything"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckArgs(tt.command, tt.args)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrUsage)
			require.ErrorIs(t, err, ErrWrongArgCount)

			var usageErr *UsageError
			require.True(t, errors.As(err, &usageErr))
			assert.Equal(t, Usage(tt.command), usageErr.Usage)
			assert.Contains(t, usageErr.Error(), usageErr.Usage)
		})
	}
}
