// Package log provides the console logger shared by all commands.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

type ctxKey struct{}

// Status markers, matching the bracketed style used across command output.
const (
	MarkOK   = "[ OK ]"
	MarkSkip = "[SKIP]"
	MarkWarn = "[WARN]"
	MarkFail = "[FAIL]"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	skipColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

// Logger writes command output and optional verbose detail. It is safe for
// concurrent use; each call is written as one unit.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New creates a new logger.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// SetColor enables or disables colored markers process-wide.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	l.write(fmt.Sprintf(format, args...))
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	l.write(fmt.Sprintln(args...))
}

// Verbosef writes a line only in verbose mode.
func (l *Logger) Verbosef(format string, args ...any) {
	if l.verbose {
		l.write(fmt.Sprintf(format+"\n", args...))
	}
}

// OK writes an indented "[ OK ]" line.
func (l *Logger) OK(format string, args ...any) { l.mark(okColor, MarkOK, format, args...) }

// Skip writes an indented "[SKIP]" line.
func (l *Logger) Skip(format string, args ...any) { l.mark(skipColor, MarkSkip, format, args...) }

// Warn writes an indented "[WARN]" line.
func (l *Logger) Warn(format string, args ...any) { l.mark(warnColor, MarkWarn, format, args...) }

// Fail writes an indented "[FAIL]" line.
func (l *Logger) Fail(format string, args ...any) { l.mark(failColor, MarkFail, format, args...) }

func (l *Logger) mark(c *color.Color, marker, format string, args ...any) {
	l.write(fmt.Sprintf("  %s %s\n", c.Sprint(marker), fmt.Sprintf(format, args...)))
}

func (l *Logger) write(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, s)
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}
