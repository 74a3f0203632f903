package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/notifications"
)

// Sender delivers feed events to the account mailbox. Delivery is a log line.
type Sender struct {
	to  string
	log *slog.Logger
}

func NewSender(to string, log *slog.Logger) *Sender {
	return &Sender{to: to, log: log}
}

func (s *Sender) Send(ctx context.Context, event notifications.Event) error {
	if event.Message == "" {
		return fmt.Errorf("empty notification")
	}
	s.log.InfoContext(ctx, "email sent",
		"to", s.to,
		"subject", subject(event),
		"body", event.Message,
	)
	return nil
}

// HandleMessage decodes a raw notifications-topic payload and sends it.
// Undecodable payloads are logged and skipped.
func (s *Sender) HandleMessage(ctx context.Context, payload []byte) error {
	var event notifications.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		s.log.Warn("skipping undecodable notification", "error", err)
		return nil
	}
	if err := s.Send(ctx, event); err != nil {
		s.log.Warn("skipping notification", "error", err)
	}
	return nil
}

func subject(e notifications.Event) string {
	switch e.Severity {
	case domain.SeverityAlert:
		return "Spacify: action on your booking"
	case domain.SeveritySuccess:
		return "Spacify: confirmed"
	default:
		return "Spacify update"
	}
}
