package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/vantran-dev/storefront/internal/config"
)

// Message is one outbound customer notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single notification. Delivery is best-effort: callers
// never treat a send failure as their own failure.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers notifications over plain SMTP.
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender builds SMTPSender from mail settings.
func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

// Send writes the message to the configured SMTP relay.
func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("empty recipient address")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return smtp.SendMail(s.addr, s.auth, s.from, []string{msg.To}, []byte(b.String()))
}

// LogSender records notifications through the logger. Used when no SMTP host
// is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender builds LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message instead of delivering it.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("notification",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
