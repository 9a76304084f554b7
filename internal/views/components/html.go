// Package components holds the shell's reusable view pieces.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HTML accumulates markup and remembers the first write error, so view code
// can emit a sequence of fragments and check once at the end.
type HTML struct {
	w   io.Writer
	err error
}

// NewHTML wraps w.
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Raw writes trusted markup verbatim.
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes s escaped for use as element content or a quoted attribute value.
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Render writes a nested component.
func (h *HTML) Render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Err returns the first error encountered.
func (h *HTML) Err() error {
	return h.err
}

// Class joins non-empty class lists with single spaces.
func Class(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
