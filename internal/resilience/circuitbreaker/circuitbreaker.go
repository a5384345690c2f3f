// Package circuitbreaker stops calling a failing dependency for a while
// instead of piling up requests on it. It is a thin layer over sony/gobreaker.
package circuitbreaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config tunes one breaker.
type Config struct {
	Name string

	// MaxRequests is how many probe calls pass while half-open.
	MaxRequests uint32

	// Interval clears the counts while closed; Timeout is how long the breaker stays open.
	Interval time.Duration
	Timeout  time.Duration

	// The breaker opens once at least MinRequests calls were counted and the
	// share of failures reaches FailureThreshold (0.5 = half of them).
	FailureThreshold float64
	MinRequests      uint32

	// OnStateChange is called after the transition is logged. Optional.
	OnStateChange func(name string, from, to gobreaker.State)
}

// MediaLookupConfig is used by the media service client.
// Attachment flags are best effort, so the circuit opens early and recovers quickly.
func MediaLookupConfig() Config {
	return Config{
		Name:             "media-lookup",
		MaxRequests:      2,
		Interval:         30 * time.Second,
		Timeout:          15 * time.Second,
		FailureThreshold: 0.5,
		MinRequests:      4,
	}
}

// CircuitBreaker guards calls to one dependency.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

// New builds a breaker from cfg. Calls abandoned because the caller's
// context was canceled are not counted as failures.
func New(cfg Config) *CircuitBreaker {
	return &CircuitBreaker{breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.Requests >= cfg.MinRequests &&
				float64(c.TotalFailures)/float64(c.Requests) >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, from, to)
			}
		},
	})}
}

// Do runs fn through the breaker. While open it fails fast with
// gobreaker.ErrOpenState, and with gobreaker.ErrTooManyRequests once the
// half-open probes are used up.
func Do[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.breaker.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// State returns the current state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}
