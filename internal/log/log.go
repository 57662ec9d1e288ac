// Package log provides context-aware diagnostic output for git-branch-is.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/raphi011/git-branch-is/internal/styles"
)

type ctxKey struct{}

// Logger writes diagnostics (mismatch warnings, errors, traced commands).
type Logger struct {
	out   io.Writer
	trace bool
	quiet bool
}

// New creates a new logger.
// trace enables echoing of external commands, quiet suppresses warnings.
func New(out io.Writer, trace, quiet bool) *Logger {
	return &Logger{out: out, trace: trace, quiet: quiet}
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

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Warnf writes an "Error:" prefixed line unless quiet.
// Used for expected failures such as a branch mismatch.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	l.Errorf(format, args...)
}

// Errorf writes an "Error:" prefixed line. Never suppressed.
func (l *Logger) Errorf(format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintf(l.out, "%s %s\n", styles.ErrorStyle.Render("Error:"), msg)
}

// Command logs an external command execution.
// Returns a function to call with the elapsed time once the command exits.
// Only prints when tracing is enabled and not quiet.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsTracing() {
		return func(time.Duration) {}
	}
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if dir != "" {
		line = fmt.Sprintf("[%s] $ %s", dir, line)
	} else {
		line = "$ " + line
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s %s\n", styles.MutedStyle.Render(line), styles.MutedStyle.Render("("+d.Round(time.Millisecond).String()+")"))
	}
}

// IsTracing returns true if external commands are echoed.
func (l *Logger) IsTracing() bool {
	return l.trace && !l.quiet
}

// IsQuiet returns true if warnings are suppressed.
func (l *Logger) IsQuiet() bool {
	return l.quiet
}
