package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sagar00752/hrms/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestIdentityAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"user id", logger.UserID("123"), "user_id", "123"},
		{"role", logger.Role("admin"), "role", "admin"},
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"employee id", logger.EmployeeID("E-1"), "employee_id", "E-1"},
		{"message id", logger.MessageID("m-1"), "message_id", "m-1"},
		{"recipient", logger.Recipient("a@x.com"), "recipient", "a@x.com"},
		{"transport", logger.Transport("smtp"), "transport", "smtp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestQueueAttrs(t *testing.T) {
	assert.Equal(t, "emailQueue", logger.Queue("emailQueue").Value.String())
	assert.Equal(t, "job_type", logger.JobType("welcome_email").Key)
	assert.Equal(t, "welcome_email", logger.JobType("welcome_email").Value.String())

	id := logger.JobID("j-1")
	require.Equal(t, "job_id", id.Key)
	assert.Equal(t, "j-1", id.Value.String())

	assert.True(t, logger.JobID("").Equal(slog.Attr{}))
	assert.True(t, logger.MessageID("").Equal(slog.Attr{}))
	assert.True(t, logger.UserID(nil).Equal(slog.Attr{}))
}

func TestDurationAndComponent(t *testing.T) {
	d := logger.Duration(150 * time.Millisecond)
	require.Equal(t, "duration", d.Key)
	assert.Equal(t, 150*time.Millisecond, d.Value.Any())

	c := logger.Component("worker")
	require.Equal(t, "component", c.Key)
	assert.Equal(t, "worker", c.Value.String())
}
