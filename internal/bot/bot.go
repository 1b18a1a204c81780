// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bot turns chat lines into calls on the services and renders the
// replies. Auth commands go through the login state machine; market commands
// are only served to callers with an active session.
package bot

import (
	"context"
	"errors"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/market"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/validators"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// unknownLabel is the metrics label of every command without a handler.
const unknownLabel = "unknown"

// HandlerFunc executes one parsed command for identity and returns the reply.
// On failure it may still return a reply for the caller; an empty one is
// filled in by the dispatcher.
type HandlerFunc func(ctx context.Context, identity int64, args []string) (string, error)

type handlerEntry struct {
	handle HandlerFunc
	// gated handlers need an active session.
	gated bool
}

// Bot dispatches chat commands. It is safe for concurrent use; the handler
// table is fixed at construction.
type Bot struct {
	handlers map[string]handlerEntry

	auth   service.AuthService
	market *marketHandlers

	logger *logger.Logger
}

// New wires every chat command to services. currency is the quote currency
// of coin prices, used to pick the sign shown in replies.
func New(services *service.Services, currency string, log *logger.Logger) *Bot {
	b := &Bot{
		auth: services.AuthService,
		market: &marketHandlers{
			provider:  services.MarketProvider,
			predictor: services.PredictService,
			sign:      currencySign(currency),
		},
		logger: log,
	}

	b.handlers = map[string]handlerEntry{
		models.CommandStart: {handle: staticReply(replyStart)},
		models.CommandHelp:  {handle: staticReply(replyHelp)},

		models.CommandBudget: {handle: staticReply(budgetHighlightsReply())},

		models.CommandRegister:        {handle: b.register},
		models.CommandLogin:           {handle: b.login},
		models.CommandLogout:          {handle: b.logout},
		models.CommandDelete:          {handle: b.delete},
		models.CommandRequestOTP:      {handle: b.requestOTP},
		models.CommandVerifyOTP:       {handle: b.verifyOTP},
		models.CommandRecoverUsername: {handle: b.recoverUsername},
		models.CommandResetPassword:   {handle: b.resetPassword},

		models.CommandCoin:    {handle: b.market.coin, gated: true},
		models.CommandForex:   {handle: b.market.forex, gated: true},
		models.CommandStock:   {handle: b.market.stock, gated: true},
		models.CommandPredict: {handle: b.market.predict, gated: true},
		models.CommandMarket:  {handle: b.market.snapshot, gated: true},

		models.CommandFinanceNews: {handle: b.market.news, gated: true},
	}

	return b
}

// Handle runs one chat line for identity and returns the text to send back.
// It never fails: every error is turned into a reply.
func (b *Bot) Handle(ctx context.Context, identity int64, text string) string {
	rec := newMetricsRecorder()
	defer rec.record()

	log := logger.FromContext(ctx)

	parsed, err := Parse(text)
	if err != nil {
		rec.command, rec.status = unknownLabel, StatusNotFound
		return replyUnknownCommand
	}

	entry, ok := b.handlers[parsed.Name]
	if !ok {
		rec.command, rec.status = unknownLabel, StatusNotFound
		log.Debug().Str("command", parsed.Name).Msg("unknown command")
		return replyUnknownCommand
	}
	rec.command = parsed.Name

	if entry.gated {
		if err = b.auth.RequireSession(ctx, identity); err != nil {
			rec.status = StatusNotLoggedIn
			if errors.Is(err, service.ErrNotLoggedIn) {
				return replyNotLoggedIn
			}
			rec.status = StatusError
			return replyStorageError
		}
	}

	if err = validators.CheckArgs(parsed.Name, parsed.Args); err != nil {
		rec.status = StatusUsage
		return usageReply(validators.Usage(parsed.Name))
	}

	reply, err := entry.handle(ctx, identity, parsed.Args)
	if err != nil {
		rec.status = statusOf(err)
		log.Debug().Err(err).Str("command", parsed.Name).Int64("identity", identity).Msg("command failed")
		if reply == "" {
			reply = renderError(err)
		}
		return reply
	}

	log.Debug().Str("command", parsed.Name).Int64("identity", identity).Msg("command handled")
	return reply
}

func staticReply(text string) HandlerFunc {
	return func(context.Context, int64, []string) (string, error) {
		return text, nil
	}
}

// renderError covers errors a handler did not translate itself.
func renderError(err error) string {
	var usageErr *validators.UsageError
	if errors.As(err, &usageErr) {
		return usageReply(usageErr.Usage)
	}

	return replyStorageError
}

func statusOf(err error) string {
	switch {
	case errors.Is(err, validators.ErrUsage):
		return StatusUsage
	case errors.Is(err, service.ErrStorage),
		market.HasCode(err, market.CodeUnavailable),
		market.HasCode(err, market.CodeRateLimited):
		return StatusError
	default:
		return StatusRejected
	}
}
