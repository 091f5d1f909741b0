// Package retry wraps fallible operations with capped exponential
// backoff and a pluggable retry predicate.
package retry

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"
)

// Defaults applied when an Options field is unset.
const (
	DefaultMaxAttempts   = 3
	DefaultInitialDelay  = 1 * time.Second
	DefaultBackoffFactor = 2.0
	DefaultMaxDelay      = 10 * time.Second
)

// Options configures Do.
type Options struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// InitialDelay is the wait before the second attempt. Subsequent
	// waits grow by BackoffFactor per attempt, capped at MaxDelay.
	InitialDelay  time.Duration
	BackoffFactor float64
	MaxDelay      time.Duration

	// RetryIf decides whether an error is worth retrying. Defaults to
	// Transient.
	RetryIf func(error) bool
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = DefaultInitialDelay
	}
	if o.BackoffFactor <= 0 {
		o.BackoffFactor = DefaultBackoffFactor
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = DefaultMaxDelay
	}
	if o.RetryIf == nil {
		o.RetryIf = Transient
	}
	return o
}

// transientMarkers are error-message substrings treated as likely
// transient: network-level failures and 5xx statuses. Deterministic
// failures (4xx, parse errors) are not retried.
var transientMarkers = []string{"network", "timeout", "fetch", "50"}

// Transient is the default retry predicate.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Do runs op up to MaxAttempts times, sleeping between attempts with
// exponential backoff. It returns the first success or the last error;
// it never swallows a failure. Non-retryable errors return immediately.
func Do[T any](ctx context.Context, op func(context.Context) (T, error), opts Options) (T, error) {
	opts = opts.withDefaults()

	var zero T
	var lastErr error

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delayFor(attempt-1, opts)):
			}
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !opts.RetryIf(err) {
			return zero, err
		}

		if attempt < opts.MaxAttempts {
			slog.Warn("operation failed, retrying",
				"attempt", attempt,
				"max_attempts", opts.MaxAttempts,
				"error", err)
		}
	}

	return zero, lastErr
}

// delayFor computes the wait before retry number n (1-based):
// initial * factor^(n-1), capped at MaxDelay.
func delayFor(n int, opts Options) time.Duration {
	d := time.Duration(float64(opts.InitialDelay) * math.Pow(opts.BackoffFactor, float64(n-1)))
	if d > opts.MaxDelay {
		d = opts.MaxDelay
	}
	return d
}
