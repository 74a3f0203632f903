package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/logging"
	"github.com/jonboulle/clockwork"
)

type FeedUseCase interface {
	Post(ctx context.Context, entries ...domain.Notification)
	List() []domain.Notification
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

const publishRetries = 3

// Event is the wire form of a feed entry.
type Event struct {
	Message   string          `json:"message"`
	Severity  domain.Severity `json:"severity"`
	CreatedAt string          `json:"created_at"`
}

// Feed keeps user-facing notifications newest first. It is unbounded.
type Feed struct {
	mu       sync.RWMutex
	entries  []domain.Notification
	clock    clockwork.Clock
	producer Producer
	topic    string
	log      *slog.Logger
}

type FeedOption func(*Feed)

func WithProducer(p Producer, topic string) FeedOption {
	return func(f *Feed) {
		f.producer = p
		f.topic = topic
	}
}

func WithClock(c clockwork.Clock) FeedOption {
	return func(f *Feed) {
		f.clock = c
	}
}

func WithLogger(l *slog.Logger) FeedOption {
	return func(f *Feed) {
		f.log = l
	}
}

func NewFeed(opts ...FeedOption) *Feed {
	f := &Feed{
		clock: clockwork.NewRealClock(),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Post puts entries on top of the feed, keeping their relative order, so
// entries[0] becomes the newest entry.
func (f *Feed) Post(ctx context.Context, entries ...domain.Notification) {
	if len(entries) == 0 {
		return
	}

	now := f.clock.Now()
	stamped := make([]domain.Notification, len(entries))
	for i, e := range entries {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		stamped[i] = e
	}

	f.mu.Lock()
	f.entries = append(stamped, f.entries...)
	f.mu.Unlock()

	for i := len(stamped) - 1; i >= 0; i-- {
		f.publish(ctx, stamped[i])
	}
}

func (f *Feed) List() []domain.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.Notification, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *Feed) publish(ctx context.Context, n domain.Notification) {
	if f.producer == nil || f.topic == "" {
		return
	}
	event := Event{
		Message:   n.Message,
		Severity:  n.Severity,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if err := f.producer.PublishWithRetry(ctx, f.topic, string(n.Severity), event, publishRetries); err != nil {
		f.log.Warn("failed to publish notification", "severity", n.Severity, "error", err)
	}
}

var _ FeedUseCase = (*Feed)(nil)
