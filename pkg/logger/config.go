package logger

import (
	"log/slog"
	"strings"
)

// Config holds the logging settings shared by the api and worker binaries.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"hrms"`
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
}

// FromConfig builds a logger with the environment defaults for cfg.Env.
// Level and Format, when set, override those defaults.
func FromConfig(cfg Config, component string, extractors ...ContextExtractor) *slog.Logger {
	service := cfg.Service
	if component != "" {
		service = service + "-" + component
	}

	opts := []Option{WithEnvironment(cfg.Env, service)}
	if cfg.Level != "" {
		opts = append(opts, WithLevel(ParseLevel(cfg.Level)))
	}
	if cfg.Format != "" {
		opts = append(opts, WithFormat(Format(strings.ToLower(cfg.Format))))
	}
	opts = append(opts, WithContextExtractors(extractors...))

	return New(opts...)
}

// ParseLevel maps a level name to slog.Level, falling back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
