package handler

import (
	nethttp "net/http"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/handler/http"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the inbound transports enabled in cfg. metrics may be
// nil to keep /metrics unexposed.
func NewHandlers(services *service.Services, bot http.Dispatcher, metrics nethttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, bot, metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
