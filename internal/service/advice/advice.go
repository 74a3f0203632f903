package advice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/logging"
)

const Fallback = "I'm sorry, I'm having trouble providing advice right now. Please try again later."

const SystemInstruction = `You are Spacify AI, a senior logistics consultant for Indian exporters and importers.
Your goal is to help users find the best shared container spaces, optimize shipping costs in INR (Rupees),
and provide insights on GST, customs documentation (Bill of Lading), and shipping routes.
Be professional, precise, and practical.`

const DefaultTemperature float32 = 0.7

var errEmptyResponse = errors.New("empty response")

type AdviceUseCase interface {
	GetAdvice(ctx context.Context, query string) string
}

// Request is what the bridge hands to a Generator.
type Request struct {
	Query             string
	SystemInstruction string
	Temperature       float32
}

type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Bridge forwards queries to a Generator and absorbs every failure into Fallback.
type Bridge struct {
	generator   Generator
	temperature float32
	timeout     time.Duration
	log         *slog.Logger
}

type Option func(*Bridge)

func WithTemperature(t float32) Option {
	return func(b *Bridge) { b.temperature = t }
}

func WithTimeout(d time.Duration) Option {
	return func(b *Bridge) { b.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) { b.log = l }
}

func NewBridge(generator Generator, opts ...Option) *Bridge {
	b := &Bridge{
		generator:   generator,
		temperature: DefaultTemperature,
		timeout:     20 * time.Second,
		log:         logging.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bridge) GetAdvice(ctx context.Context, query string) string {
	text, err := b.generate(ctx, query)
	if err != nil {
		b.log.Warn("advice generation failed", "error", err)
		return Fallback
	}
	return text
}

type result struct {
	text string
	err  error
}

// generate waits for the generator or the timeout, whichever comes first.
// A generator that ignores ctx keeps running in the background and its
// answer is discarded.
func (b *Bridge) generate(ctx context.Context, query string) (string, error) {
	if b.generator == nil {
		return "", errors.New("no generator configured")
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		text, err := b.generator.Generate(ctx, Request{
			Query:             query,
			SystemInstruction: SystemInstruction,
			Temperature:       b.temperature,
		})
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("advice request: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		if strings.TrimSpace(res.text) == "" {
			return "", errEmptyResponse
		}
		return res.text, nil
	}
}

// ComposePrompt asks for a Hindi answer when lang is Hindi.
func ComposePrompt(query string, lang domain.Language) string {
	if lang == domain.LanguageHindi {
		return "In Hindi: " + query
	}
	return query
}

var _ AdviceUseCase = (*Bridge)(nil)
