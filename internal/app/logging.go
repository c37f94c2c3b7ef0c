package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Makepad-fr/nameboard/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the session logger. Records go to cfg.File when set,
// otherwise to fallback. The returned closer releases the file.
func NewLogger(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
