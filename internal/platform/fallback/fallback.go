// Package fallback substitutes deterministic demo data when an upstream
// provider is unconfigured or fails, so callers always receive a payload
// with the live schema.
package fallback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/SscSPs/rotalivre/internal/core/domain"
	"github.com/SscSPs/rotalivre/internal/middleware"
	"github.com/SscSPs/rotalivre/internal/observability"
)

// Source tells whether a payload came from the provider or from the mock.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result carries the value plus where it came from. Cause is nil for live data.
type Result[T any] struct {
	Value  T
	Source Source
	Cause  error
}

// Fallback reports whether Value is substituted data.
func (r Result[T]) Fallback() bool {
	return r.Source == SourceFallback
}

// RateLimited reports whether the substitution was caused by an upstream 429.
func (r Result[T]) RateLimited() bool {
	return errors.Is(r.Cause, apperrors.ErrRateLimited)
}

// Provenance describes the result for the HTTP layer.
func (r Result[T]) Provenance(provider string) domain.Provenance {
	return domain.Provenance{Provider: provider, Fallback: r.Fallback(), RateLimited: r.RateLimited()}
}

// Policy records substitutions. It holds no per-call state.
type Policy struct {
	metrics *observability.Metrics
}

// NewPolicy builds a Policy. metrics may be nil.
func NewPolicy(metrics *observability.Metrics) *Policy {
	return &Policy{metrics: metrics}
}

// Do runs primary once and returns its value, or mock() on any error.
// A nil primary means the provider has no credentials: mock is returned
// without touching the network. Do never retries.
func Do[T any](ctx context.Context, p *Policy, provider string, primary func(context.Context) (T, error), mock func() T) Result[T] {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("provider", provider))

	if primary == nil {
		logger.Debug("Provider not configured, serving fallback data")
		p.observe(provider, SourceFallback, 0)
		return Result[T]{Value: mock(), Source: SourceFallback, Cause: apperrors.ErrNotConfigured}
	}

	start := time.Now()
	value, err := primary(ctx)
	elapsed := time.Since(start)
	if err != nil {
		logger.Warn("Provider call failed, serving fallback data",
			slog.String("reason", err.Error()),
			slog.Duration("elapsed", elapsed),
		)
		p.observe(provider, SourceFallback, elapsed)
		return Result[T]{Value: mock(), Source: SourceFallback, Cause: err}
	}

	p.observe(provider, SourceLive, elapsed)
	return Result[T]{Value: value, Source: SourceLive}
}

func (p *Policy) observe(provider string, source Source, elapsed time.Duration) {
	if p == nil || p.metrics == nil {
		return
	}
	p.metrics.ProviderCalls.WithLabelValues(provider, string(source)).Inc()
	if elapsed > 0 {
		p.metrics.ProviderDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
	}
}
