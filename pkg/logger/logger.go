package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"confide/config"
)

// Logger wraps slog with the handler picked from config.LoggerMode.
type Logger struct {
	slog *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Prod {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return &Logger{slog: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) base() *slog.Logger {
	if l == nil || l.slog == nil {
		return slog.Default()
	}
	return l.slog
}

func (l Logger) Debug(msg string, args ...any) { l.base().Debug(msg, args...) }
func (l Logger) Info(msg string, args ...any)  { l.base().Info(msg, args...) }
func (l Logger) Warn(msg string, args ...any)  { l.base().Warn(msg, args...) }
func (l Logger) Error(msg string, args ...any) { l.base().Error(msg, args...) }

func (l Logger) Errorf(format string, args ...any) { l.base().Error(fmt.Sprintf(format, args...)) }
func (l Logger) Warnf(format string, args ...any)  { l.base().Warn(fmt.Sprintf(format, args...)) }
