package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/kafka"
	"github.com/Domenick1991/spacify/internal/logging"
	"github.com/Domenick1991/spacify/internal/repository"
	"github.com/Domenick1991/spacify/internal/service/notifications"
)

type LedgerUseCase interface {
	Add(ctx context.Context, booking domain.Booking)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	RaiseDispute(ctx context.Context, id string) error
	Get(id string) (*domain.Booking, error)
	List() []domain.Booking
	Summary() Summary
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

const publishRetries = 3

// Localizer reports the language feed messages are written in.
type Localizer interface {
	Language() domain.Language
}

type Summary struct {
	TotalActiveSpend int64 `json:"total_active_spend"`
	ActiveCount      int   `json:"active_count"`
}

// Ledger holds the user's bookings, newest first.
type Ledger struct {
	mu       sync.RWMutex
	bookings []domain.Booking

	feed      notifications.FeedUseCase
	archive   repository.BookingArchive
	producer  Producer
	topic     string
	localizer Localizer
	log       *slog.Logger
}

type Option func(*Ledger)

func WithProducer(p Producer, topic string) Option {
	return func(l *Ledger) {
		l.producer = p
		l.topic = topic
	}
}

func WithArchive(a repository.BookingArchive) Option {
	return func(l *Ledger) {
		l.archive = a
	}
}

func WithLocalizer(loc Localizer) Option {
	return func(l *Ledger) {
		l.localizer = loc
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

func New(feed notifications.FeedUseCase, opts ...Option) *Ledger {
	l := &Ledger{feed: feed, log: logging.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore replaces the in-memory ledger with the archived bookings.
func (l *Ledger) Restore(ctx context.Context) error {
	if l.archive == nil {
		return nil
	}
	bookings, err := l.archive.List(ctx)
	if err != nil {
		return fmt.Errorf("restore ledger: %w", err)
	}
	l.mu.Lock()
	l.bookings = bookings
	l.mu.Unlock()
	return nil
}

func (l *Ledger) Add(ctx context.Context, booking domain.Booking) {
	l.mu.Lock()
	l.bookings = append([]domain.Booking{booking}, l.bookings...)
	l.mu.Unlock()

	if l.archive != nil {
		if err := l.archive.Save(ctx, booking); err != nil {
			l.log.Warn("failed to archive booking", "booking_id", booking.ID, "error", err)
		}
	}
	l.publish(ctx, "booking_paid", booking)
}

// Cancel moves a booking to CANCELLED. Cancelling a cancelled booking
// returns it unchanged and emits nothing.
func (l *Ledger) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	l.mu.Lock()
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}
	if l.bookings[idx].Status == domain.BookingStatusCancelled {
		b := l.bookings[idx]
		l.mu.Unlock()
		return &b, nil
	}
	l.bookings[idx].Status = domain.BookingStatusCancelled
	b := l.bookings[idx]
	l.mu.Unlock()

	if l.archive != nil {
		if err := l.archive.UpdateStatus(ctx, id, domain.BookingStatusCancelled); err != nil {
			l.log.Warn("failed to archive cancellation", "booking_id", id, "error", err)
		}
	}

	lang := l.language()
	l.feed.Post(ctx, notifications.RefundNotice(lang), notifications.CancelSuccess(lang))
	l.publish(ctx, "booking_cancelled", b)
	l.log.Info("booking cancelled", "booking_id", id)
	return &b, nil
}

// RaiseDispute records nothing on the booking; it only notifies. Any booking
// in the ledger can be disputed whatever its status.
func (l *Ledger) RaiseDispute(ctx context.Context, id string) error {
	b, err := l.Get(id)
	if err != nil {
		return err
	}
	l.feed.Post(ctx, notifications.DisputeSubmitted(l.language()))
	l.publish(ctx, "dispute_raised", *b)
	return nil
}

func (l *Ledger) Get(id string) (*domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx := l.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}
	b := l.bookings[idx]
	return &b, nil
}

func (l *Ledger) List() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

func (l *Ledger) Summary() Summary {
	bookings := l.List()
	return Summary{
		TotalActiveSpend: domain.TotalActiveSpend(bookings),
		ActiveCount:      domain.ActiveCount(bookings),
	}
}

func (l *Ledger) indexOf(id string) int {
	for i, b := range l.bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) language() domain.Language {
	if l.localizer == nil {
		return domain.LanguageEnglish
	}
	return l.localizer.Language()
}

func (l *Ledger) publish(ctx context.Context, eventType string, b domain.Booking) {
	if l.producer == nil || l.topic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		OfferID:     b.OfferID,
		Origin:      b.OfferOrigin,
		Destination: b.OfferDestination,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
	if err := l.producer.PublishWithRetry(ctx, l.topic, b.ID, event, publishRetries); err != nil {
		l.log.Warn("failed to publish booking event", "type", eventType, "booking_id", b.ID, "error", err)
	}
}

var _ LedgerUseCase = (*Ledger)(nil)
