package service

import (
	"fmt"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/mailer"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/market"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/predict"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/store"
)

// Services is the set of collaborators the bot layer dispatches to.
type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	MarketProvider market.Provider
	PredictService PredictService
	AppInfoService AppInfoService
}

// Dependencies are the external capabilities injected into NewServices.
type Dependencies struct {
	Storages  *store.Storages
	Mailer    mailer.Mailer
	Provider  market.Provider
	Predictor predict.ReturnPredictor
}

func NewServices(deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger, opts ...AuthServiceOption) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(
		deps.Storages.AccountRepository,
		deps.Storages.OTPLedger,
		deps.Mailer,
		cfg.App,
		logger,
		opts...,
	)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		TokenService:   NewTokenService(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration),
		MarketProvider: deps.Provider,
		PredictService: NewPredictService(deps.Provider, deps.Predictor, logger),
		AppInfoService: appInfoService,
	}, nil
}
