// Package logging provides the level-gated logger used by the engine and by applications.
//
// Two process-wide loggers exist: Core for the framework and App for host code. Both
// default to Nop until Init is called once at startup.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Level orders log severities
type Level int8

const (
	LevelTrace Level = iota - 2
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelOff:   "OFF",
}

// ANSI colours per level, applied only when writing to a terminal
var levelColors = map[Level]string{
	LevelDebug: "\x1b[36m",
	LevelInfo:  "\x1b[32m",
	LevelWarn:  "\x1b[33m",
	LevelError: "\x1b[31m",
}

// String returns the upper-case level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int8(l))
}

// ParseLevel parses a level name, case-insensitive
func ParseLevel(s string) (Level, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == want {
			return l, nil
		}
	}
	return LevelOff, fmt.Errorf("unknown log level %q", s)
}

// slogLevel maps onto slog's scale; trace sits below slog.LevelDebug
func (l Level) slogLevel() slog.Level {
	return slog.Level(int(l) * 4)
}

// Logger is the injectable logging capability
type Logger interface {
	// Enabled reports whether messages at level are emitted
	Enabled(level Level) bool
	// Log emits msg with optional key/value pairs when level is enabled
	Log(level Level, msg string, args ...any)
}

// Nop discards everything
type Nop struct{}

func (Nop) Enabled(Level) bool        { return false }
func (Nop) Log(Level, string, ...any) {}

// Scoped is a Logger writing through slog with a fixed scope tag
type Scoped struct {
	logger *slog.Logger
	level  Level
}

// New creates a logger writing "timestamp LEVEL [SCOPE] msg k=v" lines to w.
// Level names are coloured only when w is a terminal.
func New(w io.Writer, level Level, scope string) *Scoped {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	h := &lineHandler{
		w:     w,
		mu:    &sync.Mutex{},
		scope: strings.ToUpper(scope),
		level: level,
		color: color,
	}
	return &Scoped{logger: slog.New(h), level: level}
}

// Enabled reports whether level passes the threshold
func (s *Scoped) Enabled(level Level) bool {
	return level >= s.level && level < LevelOff
}

// Log emits one record
func (s *Scoped) Log(level Level, msg string, args ...any) {
	if !s.Enabled(level) {
		return
	}
	s.logger.Log(context.Background(), level.slogLevel(), msg, args...)
}

func (s *Scoped) Trace(msg string, args ...any) { s.Log(LevelTrace, msg, args...) }
func (s *Scoped) Debug(msg string, args ...any) { s.Log(LevelDebug, msg, args...) }
func (s *Scoped) Info(msg string, args ...any)  { s.Log(LevelInfo, msg, args...) }
func (s *Scoped) Warn(msg string, args ...any)  { s.Log(LevelWarn, msg, args...) }
func (s *Scoped) Error(msg string, args ...any) { s.Log(LevelError, msg, args...) }

var (
	mu       sync.RWMutex
	core     Logger = Nop{}
	app      Logger = Nop{}
	initOnce sync.Once
)

// Init installs the process-wide loggers. Only the first call has effect.
// A nil argument keeps the Nop default for that scope.
func Init(coreLogger, appLogger Logger) {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if coreLogger != nil {
			core = coreLogger
		}
		if appLogger != nil {
			app = appLogger
		}
	})
}

// Core returns the framework logger
func Core() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return core
}

// App returns the application logger
func App() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return app
}
