package cmd

import (
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}))
}

// setupLogging points both the std logger and slog at the log file; the TUI
// owns stdout. The returned closer must be called on exit.
func setupLogging(cfg Config) (*slog.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return newLogger(io.Discard, cfg.Log.Level), io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(cfg.Log.File, "fishtrack")
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(f, cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Info("logging initialized", "level", cfg.Log.Level, "file", cfg.Log.File)
	return logger, f, nil
}
