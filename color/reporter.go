// Package color provides the console reporter and table display using
// fatih/color.
package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pwalczak/gloss"
)

// Ensure Reporter implements gloss.Reporter at compile time.
var _ gloss.Reporter = (*Reporter)(nil)

// Reporter writes colored progress output to a console stream.
type Reporter struct {
	out    io.Writer
	status *color.Color
	info   *color.Color
	warn   *color.Color
}

// NewReporter creates a Reporter writing to out (normally stderr, so
// rendered glossaries on stdout stay redirectable).
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		status: color.New(color.FgGreen, color.Bold),
		info:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
	}
}

// Statusf reports transient progress.
func (r *Reporter) Statusf(format string, args ...any) {
	r.status.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// Infof reports a notable event.
func (r *Reporter) Infof(format string, args ...any) {
	r.info.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// Warnf reports a recoverable problem.
func (r *Reporter) Warnf(format string, args ...any) {
	r.warn.Fprintln(r.out, "Warning: "+fmt.Sprintf(format, args...))
}
