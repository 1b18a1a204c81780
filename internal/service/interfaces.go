package service

import (
	"context"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the login state machine of the bot. Every method takes the
// typed payload of one chat command and returns either the transition that
// happened or a sentinel error of this package (or store.ErrAccountAlreadyExists
// for a taken username).
type AuthService interface {
	Register(ctx context.Context, cmd models.RegisterCommand) (models.AuthOutcome, error)
	Login(ctx context.Context, cmd models.LoginCommand) (models.AuthOutcome, error)
	RequestOTP(ctx context.Context, cmd models.RequestOTPCommand) (models.AuthOutcome, error)
	VerifyOTP(ctx context.Context, cmd models.VerifyOTPCommand) (models.AuthOutcome, error)
	Logout(ctx context.Context, cmd models.LogoutCommand) (models.AuthOutcome, error)
	Delete(ctx context.Context, cmd models.DeleteCommand) (models.AuthOutcome, error)
	RecoverUsername(ctx context.Context, cmd models.RecoverUsernameCommand) (models.AuthOutcome, error)
	ResetPassword(ctx context.Context, cmd models.ResetPasswordCommand) (models.AuthOutcome, error)

	// RequireSession returns ErrNotLoggedIn unless identity has an active
	// session.
	RequireSession(ctx context.Context, identity int64) error
}

// TokenService validates caller tokens and mints them for the terminal client.
type TokenService interface {
	CreateToken(ctx context.Context, identity int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PredictService answers /predict.
type PredictService interface {
	// PredictReturn fetches the latest quote of symbol and runs the model on
	// it. predict.ErrModelUnavailable is returned when no model was trained.
	PredictReturn(ctx context.Context, symbol string) (float64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
