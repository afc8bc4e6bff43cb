package ratelimiter

import (
	"hash/fnv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Sagar00752/hrms/pkg/clientip"
	"github.com/Sagar00752/hrms/pkg/handler"
	"github.com/Sagar00752/hrms/pkg/logger"
)

// maxKeyLength bounds storage keys; longer composite keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// Static returns a KeyFunc that always yields name. It separates the buckets
// of different route groups.
func Static(name string) KeyFunc {
	return func(*http.Request) string { return name }
}

// ByClientIP keys on the address stored by clientip.Middleware, falling back
// to the TCP peer.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// Composite joins the non-empty keys of keyFuncs with ":".
// Keys longer than 64 bytes are replaced by their FNV-1a hash.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}

		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// Middleware answers 429 once the bucket for the request's key is empty.
// When the store fails the request is let through and the failure logged,
// so an unreachable Redis never locks users out.
func Middleware(b *Bucket, keyFunc KeyFunc, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := b.Allow(r.Context(), key)
			if err != nil {
				log.WarnContext(r.Context(), "rate limit check failed, allowing request",
					logger.Component("ratelimit"),
					logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retryAfter := int(result.RetryAfter(time.Now()).Round(time.Second).Seconds())
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))

				log.InfoContext(r.Context(), "rate limit exceeded",
					logger.Component("ratelimit"),
					slog.String("key", key))

				_ = handler.Fail(http.StatusTooManyRequests, "Too many requests, please try again later").Render(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
