// Package output provides context-aware primary output for git-branch-is.
// Stdout only carries the --verbose match report; everything diagnostic goes
// to stderr through the log package.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/raphi011/git-branch-is/internal/styles"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// CurrentBranch reports the branch that satisfied the check.
func (p *Printer) CurrentBranch(branch string) {
	fmt.Fprintf(p.w, "Current branch is %s.\n", styles.SuccessStyle.Render(fmt.Sprintf("%q", branch)))
}
