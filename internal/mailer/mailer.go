// Package mailer delivers the confirmation and one-time code messages sent
// by the auth engine.
package mailer

import (
	"context"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends one plain-text message. The engine does not retry; a non-nil
// error means the message is lost.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP mailer, or a log-only one when cfg.Host is empty.
func New(cfg config.Mailer, log *logger.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn().Msg("mailer host is not configured, messages will only be logged")
		return NewLogMailer(log)
	}

	return NewSMTPMailer(cfg, log)
}
