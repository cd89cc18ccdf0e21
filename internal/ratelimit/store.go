// Package ratelimit limits requests per client over a rolling window.
package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key over a rolling window. Allow records the hit
// only when it is allowed.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, err error)
}
