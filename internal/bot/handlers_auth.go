package bot

import (
	"context"
	"errors"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/store"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// Argument counts are checked by the dispatcher before these run.

func (b *Bot) register(ctx context.Context, identity int64, args []string) (string, error) {
	out, err := b.auth.Register(ctx, models.RegisterCommand{
		Identity: identity, Username: args[0], Password: args[1], Email: args[2],
	})
	switch {
	case errors.Is(err, store.ErrAccountAlreadyExists):
		return replyAlreadyExists, err
	case err != nil:
		return "", err
	case !out.MailSent():
		return replyRegisteredNoMail, nil
	}

	return replyRegistered, nil
}

func (b *Bot) login(ctx context.Context, identity int64, args []string) (string, error) {
	out, err := b.auth.Login(ctx, models.LoginCommand{Identity: identity, Username: args[0], Password: args[1]})
	if errors.Is(err, service.ErrInvalidCredentials) {
		return replyInvalidLogin, err
	}
	if err != nil {
		return "", err
	}

	if out.Status == models.AuthStatusOTPRequired {
		if !out.MailSent() {
			return replyVerifyToLogin + "\n" + replyOTPNotSent, nil
		}
		return replyVerifyToLogin + "\n" + replyLoginOTPSent, nil
	}

	return replyLoggedIn, nil
}

func (b *Bot) logout(ctx context.Context, identity int64, _ []string) (string, error) {
	if _, err := b.auth.Logout(ctx, models.LogoutCommand{Identity: identity}); err != nil {
		return "", err
	}

	return replyLoggedOut, nil
}

func (b *Bot) delete(ctx context.Context, identity int64, args []string) (string, error) {
	out, err := b.auth.Delete(ctx, models.DeleteCommand{
		Identity: identity, Username: args[0], Password: args[1], Email: args[2],
	})
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return replyInvalidDelete, err
	case err != nil:
		return "", err
	case !out.MailSent():
		return replyDeletedNoMail, nil
	}

	return replyDeleted, nil
}

func (b *Bot) requestOTP(ctx context.Context, identity int64, args []string) (string, error) {
	out, err := b.auth.RequestOTP(ctx, models.RequestOTPCommand{Identity: identity, Email: args[0]})
	if err != nil {
		return "", err
	}
	if !out.MailSent() {
		return replyOTPNotSent, nil
	}

	return replyOTPSent, nil
}

func (b *Bot) verifyOTP(ctx context.Context, identity int64, args []string) (string, error) {
	_, err := b.auth.VerifyOTP(ctx, models.VerifyOTPCommand{Identity: identity, Email: args[0], Code: args[1]})
	if errors.Is(err, service.ErrInvalidOTP) {
		return replyInvalidOTP, err
	}
	if err != nil {
		return "", err
	}

	return replyOTPVerified, nil
}

func (b *Bot) recoverUsername(ctx context.Context, identity int64, args []string) (string, error) {
	out, err := b.auth.RecoverUsername(ctx, models.RecoverUsernameCommand{Identity: identity, Email: args[0]})
	if errors.Is(err, service.ErrOTPRequired) {
		return replyRequestOTPFirst, err
	}
	if err != nil {
		return "", err
	}

	return usernameReply(out.Username), nil
}

func (b *Bot) resetPassword(ctx context.Context, identity int64, args []string) (string, error) {
	_, err := b.auth.ResetPassword(ctx, models.ResetPasswordCommand{Identity: identity, Email: args[0], NewPassword: args[1]})
	if errors.Is(err, service.ErrOTPRequired) {
		return replyRequestOTPFirst, err
	}
	if err != nil {
		return "", err
	}

	return replyPasswordReset, nil
}
