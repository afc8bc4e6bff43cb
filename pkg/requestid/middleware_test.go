package requestid_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Sagar00752/hrms/pkg/logger"
	"github.com/Sagar00752/hrms/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "missing", header: ""},
		{name: "well formed", header: "req_123-abc", keep: true},
		{name: "at length limit", header: strings.Repeat("a", 128), keep: true},
		{name: "too long", header: strings.Repeat("a", 129)},
		{name: "spaces", header: "req 123"},
		{name: "markup", header: "<script>alert(1)</script>"},
		{name: "header injection", header: "id\r\nSet-Cookie: x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			if tt.header != "" {
				req.Header[requestid.Header] = []string{tt.header}
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(requestid.Header))
			if tt.keep {
				assert.Equal(t, tt.header, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err, "expected a generated uuid, got %q", seen)
		})
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	t.Parallel()

	ids := map[string]bool{}
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[requestid.FromContext(r.Context())] = true
	}))
	for range 20 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	assert.Len(t, ids, 20)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatText),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.InfoContext(r.Context(), "employee created")
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/employees", nil)
	req.Header.Set(requestid.Header, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	log.Info("outside a request")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "request_id=req-42")
		assert.NotContains(t, lines[1], "request_id")
	}
}
