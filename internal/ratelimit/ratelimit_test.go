package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis, *clock) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewRedisStore(client, "")
	store.now = c.now
	return store, mr, c
}

func newTestMemoryStore() (*MemoryStore, *clock) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = c.now
	return store, c
}

// exerciseStore runs the rolling-window contract against any Store.
func exerciseStore(t *testing.T, store Store, c *clock) {
	ctx := context.Background()
	window := time.Hour

	for want := 2; want >= 0; want-- {
		allowed, remaining, err := store.Allow(ctx, "1.2.3.4", 3, window)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
		c.advance(10 * time.Minute)
	}

	allowed, remaining, err := store.Allow(ctx, "1.2.3.4", 3, window)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)

	allowed, _, err = store.Allow(ctx, "5.6.7.8", 3, window)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are limited independently")

	// The first hit leaves the window; rejected hits never counted.
	c.advance(31 * time.Minute)
	allowed, remaining, err = store.Allow(ctx, "1.2.3.4", 3, window)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, remaining)
}

func TestMemoryStore(t *testing.T) {
	store, c := newTestMemoryStore()
	exerciseStore(t, store, c)

	c.advance(2 * time.Hour)
	assert.Equal(t, 2, store.Sweep(time.Hour))
	assert.Empty(t, store.hits)
}

func TestRedisStore(t *testing.T) {
	store, mr, c := newTestRedisStore(t)
	exerciseStore(t, store, c)

	require.True(t, mr.Exists("ratelimit:1.2.3.4"))
	assert.Equal(t, time.Hour, mr.TTL("ratelimit:1.2.3.4"))

	mr.FastForward(time.Hour + time.Second)
	assert.False(t, mr.Exists("ratelimit:1.2.3.4"), "idle keys expire")
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr, _ := newTestRedisStore(t)
	mr.Close()

	_, _, err := store.Allow(context.Background(), "1.2.3.4", 3, time.Hour)
	assert.Error(t, err)
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (bool, int, error) {
	return false, 0, errors.New("store down")
}

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("LimitsPerClient", func(t *testing.T) {
		store, _ := newTestMemoryStore()
		var limited int
		onLimit := func(w http.ResponseWriter, r *http.Request) {
			limited++
			w.WriteHeader(http.StatusTooManyRequests)
		}
		h := Middleware(store, 2, time.Hour, onLimit)(ok)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = "10.0.0.1:5555"
			h.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
			if i == 2 {
				assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
				assert.Equal(t, "3600", rec.Header().Get("Retry-After"))
			}
		}
		assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
		assert.Equal(t, 1, limited)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.2:5555"
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("DefaultRejection", func(t *testing.T) {
		store, _ := newTestMemoryStore()
		h := Middleware(store, 0, time.Hour, nil)(ok)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"error":"Too many requests, please try again later."}`, rec.Body.String())
	})

	t.Run("FailsOpen", func(t *testing.T) {
		h := Middleware(failingStore{}, 1, time.Hour, nil)(ok)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::1]:8080"
	assert.Equal(t, "::1", clientKey(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientKey(req))
}
