package advice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type panicGenerator struct{}

func (panicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	panic("boom")
}

type slowGenerator struct{}

func (slowGenerator) Generate(ctx context.Context, req Request) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestBridge_ReturnsTextVerbatim(t *testing.T) {
	gen := &MockGenerator{}
	bridge := NewBridge(gen)

	gen.On("Generate", mock.Anything, Request{
		Query:             "Best route to Dubai?",
		SystemInstruction: SystemInstruction,
		Temperature:       0.7,
	}).Return("  Ship via JNPT.  ", nil).Once()

	assert.Equal(t, "  Ship via JNPT.  ", bridge.GetAdvice(context.Background(), "Best route to Dubai?"))
	gen.AssertExpectations(t)
}

func TestBridge_Fallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "collaborator error", err: errors.New("network unreachable")},
		{name: "empty response", text: ""},
		{name: "blank response", text: "   \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &MockGenerator{}
			gen.On("Generate", mock.Anything, mock.Anything).Return(tt.text, tt.err)

			assert.Equal(t, Fallback, NewBridge(gen).GetAdvice(context.Background(), "q"))
		})
	}
}

type deafGenerator struct{ delay time.Duration }

func (g deafGenerator) Generate(ctx context.Context, req Request) (string, error) {
	time.Sleep(g.delay)
	return "late answer", nil
}

func TestBridge_FallbackWhenGeneratorIgnoresContext(t *testing.T) {
	bridge := NewBridge(deafGenerator{delay: 500 * time.Millisecond}, WithTimeout(20*time.Millisecond))

	start := time.Now()
	answer := bridge.GetAdvice(context.Background(), "q")

	assert.Equal(t, Fallback, answer)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestBridge_FallbackOnPanic(t *testing.T) {
	assert.Equal(t, Fallback, NewBridge(panicGenerator{}).GetAdvice(context.Background(), "q"))
}

func TestBridge_FallbackOnTimeout(t *testing.T) {
	bridge := NewBridge(slowGenerator{}, WithTimeout(10*time.Millisecond))
	assert.Equal(t, Fallback, bridge.GetAdvice(context.Background(), "q"))
}

func TestBridge_NilGenerator(t *testing.T) {
	assert.Equal(t, Fallback, NewBridge(nil).GetAdvice(context.Background(), "q"))
}

func TestBridge_Temperature(t *testing.T) {
	gen := &MockGenerator{}
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(r Request) bool { return r.Temperature == 0.2 })).Return("ok", nil).Once()

	assert.Equal(t, "ok", NewBridge(gen, WithTemperature(0.2)).GetAdvice(context.Background(), "q"))
	gen.AssertExpectations(t)
}

func TestComposePrompt(t *testing.T) {
	assert.Equal(t, "In Hindi: GST rules?", ComposePrompt("GST rules?", domain.LanguageHindi))
	assert.Equal(t, "GST rules?", ComposePrompt("GST rules?", domain.LanguageEnglish))
}
