package service

import (
	"context"
	"fmt"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/validators"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AuthValidationService rejects malformed payloads before they reach the
// wrapped AuthService. Rejections wrap validators.ErrUsage and have no side
// effects.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCommandValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, cmd models.RegisterCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.Register(ctx, cmd)
}

func (v *AuthValidationService) Login(ctx context.Context, cmd models.LoginCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.Login(ctx, cmd)
}

func (v *AuthValidationService) RequestOTP(ctx context.Context, cmd models.RequestOTPCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.RequestOTP(ctx, cmd)
}

func (v *AuthValidationService) VerifyOTP(ctx context.Context, cmd models.VerifyOTPCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.VerifyOTP(ctx, cmd)
}

func (v *AuthValidationService) Logout(ctx context.Context, cmd models.LogoutCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.Logout(ctx, cmd)
}

func (v *AuthValidationService) Delete(ctx context.Context, cmd models.DeleteCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.Delete(ctx, cmd)
}

func (v *AuthValidationService) RecoverUsername(ctx context.Context, cmd models.RecoverUsernameCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.RecoverUsername(ctx, cmd)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, cmd models.ResetPasswordCommand) (models.AuthOutcome, error) {
	if err := v.validate(ctx, cmd); err != nil {
		return models.AuthOutcome{}, err
	}
	return v.inner.ResetPassword(ctx, cmd)
}

func (v *AuthValidationService) RequireSession(ctx context.Context, identity int64) error {
	if identity == 0 {
		return ErrNotLoggedIn
	}
	return v.inner.RequireSession(ctx, identity)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) validate(ctx context.Context, cmd any) error {
	if err := v.validator.Validate(ctx, cmd); err != nil {
		return fmt.Errorf("error during command validation: %w", err)
	}
	return nil
}
