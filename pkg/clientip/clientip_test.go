package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sagar00752/hrms/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trusted    []string
		want       string
	}{
		{
			name:       "remote addr without trusted headers",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "10.0.0.1:5123",
			want:       "10.0.0.1",
		},
		{
			name:       "leftmost forwarded address",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"},
			remoteAddr: "10.0.0.1:5123",
			trusted:    clientip.DefaultHeaders,
			want:       "203.0.113.9",
		},
		{
			name:       "skips invalid forwarded entries",
			headers:    map[string]string{"X-Forwarded-For": "unknown, 198.51.100.4"},
			remoteAddr: "10.0.0.1:5123",
			trusted:    clientip.DefaultHeaders,
			want:       "198.51.100.4",
		},
		{
			name:       "falls through to real ip",
			headers:    map[string]string{"X-Forwarded-For": "garbage", "X-Real-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.1:5123",
			trusted:    clientip.DefaultHeaders,
			want:       "198.51.100.7",
		},
		{
			name:       "header order decides",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9", "CF-Connecting-IP": "192.0.2.1"},
			remoteAddr: "10.0.0.1:5123",
			trusted:    []string{"CF-Connecting-IP", "X-Forwarded-For"},
			want:       "192.0.2.1",
		},
		{
			name:       "ipv6 normalized",
			remoteAddr: "[2001:db8:0:0::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.10",
			want:       "192.0.2.10",
		},
		{
			name:       "nothing valid",
			remoteAddr: "pipe",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(r, tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware("X-Real-IP")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "198.51.100.7")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.7", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "192.0.2.1"))
	assert.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}
