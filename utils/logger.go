package utils

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// nopHandler discards every record; Enabled returns false so callers skip formatting
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by every package of the game.
// Logging is silent until SetLogger is called; nil restores silence.
//
// Levels in use:
//   - Debug: generation commits, snapshot reads and writes
//   - Info: patterns loaded, games saved, run summaries
//   - Warn: recoverable failures (close errors, rejected loads)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ParseLogLevel maps debug/info/warn/error onto slog levels
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "[ParseLogLevel] invalid level: %q", s)
	}
	return level, nil
}
