package ratelimiter_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sagar00752/hrms/pkg/clientip"
	"github.com/Sagar00752/hrms/pkg/ratelimiter"
)

type brokenStore struct{}

func (brokenStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, ratelimiter.ErrStoreUnavailable
}

func (brokenStore) Reset(context.Context, string) error { return errors.New("down") }

func limited(t *testing.T, store ratelimiter.Store) http.Handler {
	t.Helper()
	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	key := ratelimiter.Composite(ratelimiter.Static("auth"), ratelimiter.ByClientIP)
	return clientip.Middleware("X-Real-IP")(ratelimiter.Middleware(b, key, slog.New(slog.DiscardHandler))(ok))
}

func hit(h http.Handler, ip string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	r.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("denies after burst", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
		h := limited(t, store)

		first := hit(h, "192.0.2.1")
		assert.Equal(t, http.StatusNoContent, first.Code)
		assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

		assert.Equal(t, http.StatusNoContent, hit(h, "192.0.2.1").Code)

		denied := hit(h, "192.0.2.1")
		assert.Equal(t, http.StatusTooManyRequests, denied.Code)
		assert.Equal(t, "0", denied.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, denied.Header().Get("Retry-After"))
		assert.Contains(t, denied.Body.String(), "Too many requests")

		assert.Equal(t, http.StatusNoContent, hit(h, "192.0.2.2").Code)
	})

	t.Run("fails open", func(t *testing.T) {
		t.Parallel()
		h := limited(t, brokenStore{})
		for range 5 {
			assert.Equal(t, http.StatusNoContent, hit(h, "192.0.2.1").Code)
		}
	})
}

func TestComposite(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(clientip.WithContext(r.Context(), "192.0.2.1"))

	assert.Equal(t, "auth:192.0.2.1", ratelimiter.Composite(ratelimiter.Static("auth"), ratelimiter.ByClientIP)(r))
	assert.Equal(t, "auth", ratelimiter.Composite(ratelimiter.Static("auth"), ratelimiter.Static(""))(r))
	assert.Empty(t, ratelimiter.Composite()(r))

	long := ratelimiter.Composite(ratelimiter.Static(strings.Repeat("x", 80)), ratelimiter.ByClientIP)(r)
	assert.LessOrEqual(t, len(long), 64)
	assert.NotContains(t, long, "192.0.2.1")
}
