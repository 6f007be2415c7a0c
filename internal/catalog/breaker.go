// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/recommend"
)

// BreakerStore guards a Store with a circuit breaker. While the breaker is
// open every call fails fast with an error wrapping ErrUnavailable.
//
// ErrNotFound and context cancellation count as successes; they say nothing
// about the health of the store.
type BreakerStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
}

// NewBreakerStore wraps store. cfg.Enabled is ignored; callers skip the
// wrapper entirely when the breaker is disabled.
func NewBreakerStore(store Store, name string, cfg config.BreakerConfig) *BreakerStore {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= threshold
			if trip {
				logging.Warn().
					Str("breaker", name).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &BreakerStore{store: store, cb: cb, name: name}
}

// State returns the breaker state: closed, half-open or open.
func (b *BreakerStore) State() string {
	return stateToString(b.cb.State())
}

func (b *BreakerStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	counts := b.cb.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
	return nil, err
}

// castResult converts a breaker result back to its static type.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// Recipes implements Store.
func (b *BreakerStore) Recipes(ctx context.Context) ([]recommend.Recipe, error) {
	return castResult[[]recommend.Recipe](b.execute(func() (interface{}, error) {
		return b.store.Recipes(ctx)
	}))
}

// Profile implements Store.
func (b *BreakerStore) Profile(ctx context.Context, userID string) (Profile, error) {
	return castResult[Profile](b.execute(func() (interface{}, error) {
		return b.store.Profile(ctx, userID)
	}))
}

// RecordView implements Store.
func (b *BreakerStore) RecordView(ctx context.Context, userID, recipeID string, at time.Time) error {
	_, err := b.execute(func() (interface{}, error) {
		return nil, b.store.RecordView(ctx, userID, recipeID, at)
	})
	return err
}

// Rate implements Store.
func (b *BreakerStore) Rate(ctx context.Context, userID, recipeID string, rating int, at time.Time) error {
	_, err := b.execute(func() (interface{}, error) {
		return nil, b.store.Rate(ctx, userID, recipeID, rating, at)
	})
	return err
}

// SetPreferences implements Store.
func (b *BreakerStore) SetPreferences(ctx context.Context, userID string, prefs recommend.Preferences, at time.Time) error {
	_, err := b.execute(func() (interface{}, error) {
		return nil, b.store.SetPreferences(ctx, userID, prefs, at)
	})
	return err
}

// Ping implements Store.
func (b *BreakerStore) Ping(ctx context.Context) error {
	_, err := b.execute(func() (interface{}, error) {
		return nil, b.store.Ping(ctx)
	})
	return err
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
