package mailer

import (
	"context"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

// LogMailer records the recipient and subject instead of sending. Bodies may
// hold one-time codes and are not logged.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{logger: log}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger.FromContext(ctx).Info().
		Str("to", to).
		Str("subject", subject).
		Int("body_len", len(body)).
		Msg("mail not sent: no smtp host configured")
	return nil
}
