package http

import (
	"context"
	"net/http"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
)

// Dispatcher runs one chat line on behalf of identity and returns the reply.
type Dispatcher interface {
	Handle(ctx context.Context, identity int64, text string) string
}

type Handler struct {
	services *service.Services
	bot      Dispatcher

	// metrics serves /metrics; nil leaves the route unregistered.
	metrics http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, bot Dispatcher, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		bot:      bot,
		metrics:  metrics,
		logger:   logger,
	}
}
