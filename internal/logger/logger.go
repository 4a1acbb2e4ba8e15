// Package logger is the verbose trace for suanming.
//
// Nothing is written unless --verbose is set. When it is, each step of a
// cast (coin tosses, table lookups, the interpretation request) goes to
// stderr tagged with a level and, for scoped loggers, the component name.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level tags a trace line.
type Level int

// Trace levels, least severe first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "?"
	}
}

var levelColors = map[Level]*color.Color{
	LevelDebug: color.New(color.FgHiBlack),
	LevelInfo:  color.New(color.FgCyan),
	LevelWarn:  color.New(color.FgYellow, color.Bold),
}

var (
	mu       sync.RWMutex
	verbose  bool
	colored  bool
	minLevel = LevelDebug
	output   io.Writer = os.Stderr
	now      = time.Now
)

// SetVerbose turns the trace on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether the trace is on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetColor colours level tags. Off by default.
func SetColor(c bool) {
	mu.Lock()
	defer mu.Unlock()
	colored = c
}

// SetLevel drops lines below l.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

// SetOutput redirects the trace. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(level Level, scope, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose || level < minLevel {
		return
	}

	tag := "[" + level.String() + "]"
	if colored {
		tag = levelColors[level].Sprint(tag)
	}
	msg := fmt.Sprintf(format, args...)
	if scope != "" {
		msg = scope + ": " + msg
	}
	fmt.Fprintln(output, tag+" "+msg)
}

// Debug traces a pipeline detail.
func Debug(format string, args ...any) { write(LevelDebug, "", format, args...) }

// Info traces a notable event.
func Info(format string, args ...any) { write(LevelInfo, "", format, args...) }

// Warn traces a recoverable problem.
func Warn(format string, args ...any) { write(LevelWarn, "", format, args...) }

// Section starts a block of related trace lines.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Scope is a logger bound to one component.
type Scope struct {
	name string
}

// For returns a logger whose lines are prefixed with name.
func For(name string) *Scope {
	return &Scope{name: name}
}

// Debug traces a pipeline detail.
func (s *Scope) Debug(format string, args ...any) { write(LevelDebug, s.name, format, args...) }

// Info traces a notable event.
func (s *Scope) Info(format string, args ...any) { write(LevelInfo, s.name, format, args...) }

// Warn traces a recoverable problem.
func (s *Scope) Warn(format string, args ...any) { write(LevelWarn, s.name, format, args...) }

// Timed starts a timer for step; the returned func traces how long it took.
//
//	done := log.Timed("interpret")
//	defer done()
func (s *Scope) Timed(step string) func() {
	start := now()
	return func() {
		write(LevelDebug, s.name, "%s took %s", step, now().Sub(start).Round(time.Millisecond))
	}
}
