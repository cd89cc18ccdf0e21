package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var ErrExhausted = errors.New("retry budget exhausted")

// Policy bounds a sequential retry loop.
type Policy struct {
	Attempts int
	Delay    time.Duration
	// Retryable decides whether another attempt may follow err.
	// A nil func retries every error.
	Retryable func(error) bool
}

func (p Policy) backOff(ctx context.Context) backoff.BackOffContext {
	attempts := max(p.Attempts, 1)
	return backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), uint64(attempts-1)),
		ctx,
	)
}

// Do runs fn until it succeeds, returns a non-retryable error, or the
// attempts run out. Attempts are never concurrent.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) error) error {
	var (
		attempt   int
		permanent bool
	)
	op := func() error {
		if err := ctx.Err(); err != nil {
			permanent = true
			return backoff.Permanent(err)
		}
		attempt++
		err := fn(ctx, attempt)
		if err != nil && p.Retryable != nil && !p.Retryable(err) {
			permanent = true
			return backoff.Permanent(err)
		}
		return err
	}

	err := backoff.Retry(op, p.backOff(ctx))
	switch {
	case err == nil, permanent:
		return err
	case ctx.Err() != nil:
		return ctx.Err()
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempt, err)
}
