package email

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/notifications"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSender(buf *bytes.Buffer) *Sender {
	return NewSender("trader@spacify.in", slog.New(slog.NewTextHandler(buf, nil)))
}

func TestSender_HandleMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSender(&buf)
	payload, err := json.Marshal(notifications.Event{Message: "Space Secured: JNPT, Mumbai Hub Confirmed", Severity: domain.SeveritySuccess})
	require.NoError(t, err)

	require.NoError(t, s.HandleMessage(context.Background(), payload))

	assert.Contains(t, buf.String(), "email sent")
	assert.Contains(t, buf.String(), "Spacify: confirmed")
	assert.Contains(t, buf.String(), "trader@spacify.in")
}

func TestSender_HandleMessageSkipsGarbage(t *testing.T) {
	var buf bytes.Buffer
	s := newSender(&buf)

	assert.NoError(t, s.HandleMessage(context.Background(), []byte("not json")))
	assert.NoError(t, s.HandleMessage(context.Background(), []byte(`{"message":""}`)))
	assert.NotContains(t, buf.String(), "email sent")
}

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	s := newSender(&buf)

	assert.Error(t, s.Send(context.Background(), notifications.Event{}))
	assert.NoError(t, s.Send(context.Background(), notifications.Event{Message: "Refund initiated", Severity: domain.SeverityAlert}))
	assert.Contains(t, buf.String(), "action on your booking")
}
