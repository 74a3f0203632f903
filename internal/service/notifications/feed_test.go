package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error {
	args := m.Called(ctx, topic, key, value, maxRetries)
	return args.Error(0)
}

func TestFeed_PostNewestFirst(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	feed := NewFeed(WithClock(clock))
	ctx := context.Background()

	feed.Post(ctx, domain.Notification{Message: "first", Severity: domain.SeverityInfo})
	feed.Post(ctx, domain.Notification{Message: "second", Severity: domain.SeveritySuccess})

	entries := feed.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Message)
	assert.Equal(t, "first", entries[1].Message)
	assert.Equal(t, clock.Now(), entries[0].CreatedAt)
}

func TestFeed_PostGroupKeepsOrder(t *testing.T) {
	feed := NewFeed()
	ctx := context.Background()

	feed.Post(ctx, Welcome(domain.LanguageEnglish))
	feed.Post(ctx, RefundNotice(domain.LanguageEnglish), CancelSuccess(domain.LanguageEnglish))

	entries := feed.List()
	require.Len(t, entries, 3)
	assert.Equal(t, domain.SeverityAlert, entries[0].Severity)
	assert.Equal(t, domain.SeveritySuccess, entries[1].Severity)
	assert.Equal(t, domain.SeverityInfo, entries[2].Severity)
}

func TestFeed_NoDedup(t *testing.T) {
	feed := NewFeed()
	n := domain.Notification{Message: "same", Severity: domain.SeverityInfo}

	feed.Post(context.Background(), n)
	feed.Post(context.Background(), n)

	assert.Len(t, feed.List(), 2)
}

func TestFeed_ListIsSnapshot(t *testing.T) {
	feed := NewFeed()
	feed.Post(context.Background(), domain.Notification{Message: "x"})

	entries := feed.List()
	entries[0].Message = "mutated"

	assert.Equal(t, "x", feed.List()[0].Message)
}

func TestFeed_PublishesToProducer(t *testing.T) {
	producer := &MockProducer{}
	feed := NewFeed(WithProducer(producer, "notifications"))
	ctx := context.Background()

	producer.On("PublishWithRetry", ctx, "notifications", "alert", mock.AnythingOfType("notifications.Event"), 3).Return(nil).Once()
	producer.On("PublishWithRetry", ctx, "notifications", "success", mock.AnythingOfType("notifications.Event"), 3).Return(errors.New("broker down")).Once()

	feed.Post(ctx, RefundNotice(domain.LanguageEnglish), CancelSuccess(domain.LanguageEnglish))

	assert.Len(t, feed.List(), 2)
	producer.AssertExpectations(t)
}

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, "Space Secured: JNPT, Mumbai Hub Confirmed", MessagesFor(domain.LanguageEnglish).SpaceSecured("JNPT, Mumbai"))
	assert.Equal(t, MessagesFor(domain.LanguageEnglish), MessagesFor("fr"))
	assert.NotEqual(t, MessagesFor(domain.LanguageEnglish).CancelSuccess, MessagesFor(domain.LanguageHindi).CancelSuccess)
}
