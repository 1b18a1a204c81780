package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

const implicitTLSPort = 465

var ErrInvalidRecipient = errors.New("invalid mail recipient")

// SMTPMailer sends through one SMTP session per message. Port 465 uses
// implicit TLS; other ports upgrade with STARTTLS when the server offers it.
type SMTPMailer struct {
	cfg    config.Mailer
	logger *logger.Logger
	dialer net.Dialer
}

func NewSMTPMailer(cfg config.Mailer, log *logger.Logger) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	return &SMTPMailer{
		cfg:    cfg,
		logger: log,
		dialer: net.Dialer{Timeout: 10 * time.Second},
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	log := logger.FromContext(ctx)

	if to == "" || strings.ContainsAny(to, "\r\n") {
		return ErrInvalidRecipient
	}

	if err := m.send(ctx, to, buildMessage(m.cfg.From, to, subject, body)); err != nil {
		log.Err(err).Str("to", to).Str("subject", subject).Msg("error sending mail")
		return fmt.Errorf("error sending mail: %w", err)
	}

	log.Debug().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}

func (m *SMTPMailer) send(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	conn, err := m.dial(ctx, addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer client.Close()

	if m.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
				return err
			}
		}
	}

	if m.cfg.Username != "" {
		if err = client.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return err
		}
	}

	if err = client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err = client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func (m *SMTPMailer) dial(ctx context.Context, addr string) (net.Conn, error) {
	if m.cfg.Port == implicitTLSPort {
		d := tls.Dialer{NetDialer: &m.dialer, Config: &tls.Config{ServerName: m.cfg.Host}}
		return d.DialContext(ctx, "tcp", addr)
	}

	return m.dialer.DialContext(ctx, "tcp", addr)
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
