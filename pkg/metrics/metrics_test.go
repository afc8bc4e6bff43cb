package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sagar00752/hrms/pkg/metrics"
	"github.com/Sagar00752/hrms/pkg/queue"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()
	m := metrics.New("test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/employees/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/employees/1", "/employees/2", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/employees/{id}",status="418"} 2`)
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/ok",status="200"} 1`)
	assert.Contains(t, body, `test_http_request_duration_seconds_count{method="GET",route="/ok"} 1`)
}

func TestQueueObserver(t *testing.T) {
	t.Parallel()
	m := metrics.New("test")

	m.JobEnqueued("emailQueue", "welcome_email", true)
	m.JobEnqueued("emailQueue", "welcome_email", false)
	m.JobProcessed("emailQueue", "welcome_email", queue.OutcomeCompleted, 120*time.Millisecond)
	m.JobProcessed("emailQueue", "unknown", queue.OutcomeMalformed, 0)

	body := scrape(t, m)
	assert.Contains(t, body, `test_jobs_enqueued_total{job_type="welcome_email",queue="emailQueue",result="ok"} 1`)
	assert.Contains(t, body, `test_jobs_enqueued_total{job_type="welcome_email",queue="emailQueue",result="failed"} 1`)
	assert.Contains(t, body, `test_jobs_processed_total{job_type="welcome_email",outcome="completed",queue="emailQueue"} 1`)
	assert.Contains(t, body, `test_jobs_processed_total{job_type="unknown",outcome="malformed",queue="emailQueue"} 1`)
	assert.Contains(t, body, `test_job_duration_seconds_count{job_type="welcome_email",queue="emailQueue"} 1`)
	assert.NotContains(t, body, `test_job_duration_seconds_count{job_type="unknown"`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	t.Parallel()
	a, b := metrics.New("test"), metrics.New("test")
	a.JobEnqueued("q", "welcome_email", true)

	assert.NotContains(t, scrape(t, b), `test_jobs_enqueued_total{`)
}
