// Package output provides context-aware output for runmenu.
// Stdout carries the menu's status lines; stderr (via the log package)
// carries diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/runmenu/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes status lines to stdout.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w unchanged.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewTerminal creates a Printer that adapts colour escapes to what the
// terminal behind w supports, as detected from environ. Colour is removed
// entirely when w is not a terminal or NO_COLOR is set.
func NewTerminal(w io.Writer, environ []string) *Printer {
	return &Printer{w: colorprofile.NewWriter(w, environ)}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Success writes a line in the success colour.
func (p *Printer) Success(format string, a ...any) {
	fmt.Fprintln(p.w, styles.SuccessStyle.Render(fmt.Sprintf(format, a...)))
}

// Error writes a line in the error colour.
func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintln(p.w, styles.ErrorStyle.Render(fmt.Sprintf(format, a...)))
}
