package notifier

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/vantran-dev/storefront/internal/config"
)

func TestLogSenderRecordsMessage(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := sender.Send(context.Background(), Message{
		To:      "a@example.com",
		Subject: "Order placed",
		Body:    "Your order 1 has been placed successfully.",
	})
	if err != nil {
		t.Fatalf("send returned error: %v", err)
	}

	logged := buf.String()
	if !strings.Contains(logged, `"to":"a@example.com"`) {
		t.Fatalf("expected recipient in log output, got %q", logged)
	}
	if !strings.Contains(logged, `"subject":"Order placed"`) {
		t.Fatalf("expected subject in log output, got %q", logged)
	}
}

func TestSMTPSenderRejectsEmptyRecipient(t *testing.T) {
	sender := NewSMTPSender(config.SMTP{Host: "smtp.example.com", Port: 587, From: "shop@example.com"})

	if err := sender.Send(context.Background(), Message{To: "  ", Subject: "x"}); err == nil {
		t.Fatal("expected error for empty recipient")
	}
}

func TestNewSMTPSenderAddress(t *testing.T) {
	sender := NewSMTPSender(config.SMTP{Host: "mail.example.com", Port: 2525})
	if sender.addr != "mail.example.com:2525" {
		t.Fatalf("unexpected relay address %q", sender.addr)
	}
	if sender.auth != nil {
		t.Fatal("expected anonymous relay without username")
	}

	sender = NewSMTPSender(config.SMTP{Host: "mail.example.com", Port: 2525, Username: "u", Password: "p"})
	if sender.auth == nil {
		t.Fatal("expected plain auth with username configured")
	}
}
