package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"levelzero/internal/platform/config"
)

// New builds a structured logger writing to stderr.
func New(cfg config.Log) (*slog.Logger, error) {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter is New with an explicit destination. Level "off" discards
// everything.
func NewWithWriter(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Level))
	if name == "off" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}
	level, err := parseLevel(name)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "":
		return slog.LevelWarn, nil
	case "trace":
		return slog.LevelDebug, nil
	case "critical":
		return slog.LevelError, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
