package gallery

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Level orders log severities. The zero value is LevelInfo.
type Level int

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel accepts the level names in any case, plus "warning".
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn, nil
	}
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// DefaultLogger writes "[prefix] LEVEL: message" lines, dropping those below
// its minimum level. Warnings and errors go to the error stream. It counts
// the lines it writes per level so a run can be summarised.
type DefaultLogger struct {
	mu     sync.Mutex
	min    Level
	prefix string
	out    *log.Logger
	err    *log.Logger
	counts map[Level]int
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return newLogger(log.New(os.Stdout, "", flags), log.New(os.Stderr, "", flags), prefix, debugLevel(debug))
}

// NewWriterLogger logs every level to w without timestamps. Tests and the
// headless driver use it to capture output.
func NewWriterLogger(w io.Writer, prefix string, debug bool) *DefaultLogger {
	l := log.New(w, "", 0)
	return newLogger(l, l, prefix, debugLevel(debug))
}

func newLogger(out, err *log.Logger, prefix string, min Level) *DefaultLogger {
	return &DefaultLogger{
		min:    min,
		prefix: prefix,
		out:    out,
		err:    err,
		counts: make(map[Level]int),
	}
}

func debugLevel(debug bool) Level {
	if debug {
		return LevelDebug
	}
	return LevelInfo
}

func (l *DefaultLogger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.min
}

func (l *DefaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	l.min = level
	l.mu.Unlock()
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.Level() <= LevelDebug
}

// SetDebug lowers the minimum to LevelDebug, or raises it back to LevelInfo.
// A minimum above LevelInfo is left alone when disabling.
func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch {
	case enabled:
		l.min = LevelDebug
	case l.min < LevelInfo:
		l.min = LevelInfo
	}
}

// Count reports how many lines were written at level.
func (l *DefaultLogger) Count(level Level) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[level]
}

func (l *DefaultLogger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		return
	}
	l.counts[level]++

	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = fmt.Sprintf("[%s] %s: %s", l.prefix, level, msg)
	} else {
		msg = fmt.Sprintf("%s: %s", level, msg)
	}
	if level >= LevelWarn {
		l.err.Print(msg)
		return
	}
	l.out.Print(msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *DefaultLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

// LoggingModule installs a DefaultLogger as a resource. Debug overrides Level.
type LoggingModule struct {
	Prefix string
	Debug  bool
	Level  Level
	// Output overrides stdout/stderr when set.
	Output io.Writer
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	var l *DefaultLogger
	if m.Output != nil {
		l = NewWriterLogger(m.Output, m.Prefix, m.Debug)
	} else {
		l = NewDefaultLogger(m.Prefix, m.Debug)
	}
	if !m.Debug {
		l.SetLevel(m.Level)
	}
	cmd.AddResources(l)
}

type nopLogger struct{}

func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool    { return false }
func (nopLogger) SetDebug(bool)         {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Logger returns the DefaultLogger resource, else any resource implementing
// Logger, else a no-op logger. It never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	if l := Resource[DefaultLogger](app); l != nil {
		return l
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}

// appReporter resolves the logger on every call so modules installed before
// LoggingModule still log through it.
type appReporter struct {
	app *App
}

func (r appReporter) Warnf(format string, args ...any)  { r.app.Logger().Warnf(format, args...) }
func (r appReporter) Errorf(format string, args ...any) { r.app.Logger().Errorf(format, args...) }
