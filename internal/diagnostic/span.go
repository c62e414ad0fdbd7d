package diagnostic

import (
	"strings"

	"github.com/better-ecosystem/better-shell/internal/ansiseq"
)

// RGB is a 24-bit color used by a Span's foreground/background.
type RGB struct {
	R, G, B uint8
}

// Span is a structured fragment of the rendered report: a run of text
// with an optional foreground/background color. Building a []Span first
// and rendering it last (Design Notes §9) lets tests inspect the report's
// structure independent of whether color is actually emitted.
type Span struct {
	FG   *RGB
	BG   *RGB
	Text string
}

// Plain builds an uncolored span.
func Plain(text string) Span { return Span{Text: text} }

// Colored builds a span with a foreground color.
func Colored(text string, fg RGB) Span { return Span{FG: &fg, Text: text} }

// RenderSpans concatenates spans into a string, applying SGR escapes per
// span when useColor is true and resetting after each colored span.
func RenderSpans(spans []Span, useColor bool) string {
	var b strings.Builder
	for _, s := range spans {
		if !useColor || (s.FG == nil && s.BG == nil) {
			b.WriteString(s.Text)
			continue
		}
		if s.FG != nil {
			b.WriteString(ansiseq.SGRForeground(s.FG.R, s.FG.G, s.FG.B))
		}
		if s.BG != nil {
			b.WriteString(ansiseq.SGRBackground(s.BG.R, s.BG.G, s.BG.B))
		}
		b.WriteString(s.Text)
		b.WriteString(ansiseq.SGRReset)
	}
	return b.String()
}

// Palette colors used by the report (spec.md §4.9).
var (
	ColorKind      = RGB{R: 220, G: 60, B: 60}
	ColorFrame     = RGB{R: 100, G: 100, B: 110}
	ColorLineNum   = RGB{R: 120, G: 120, B: 130}
	ColorSource    = RGB{R: 90, G: 160, B: 220}
	ColorCaret     = RGB{R: 220, G: 60, B: 60}
	ColorMessage   = RGB{R: 220, G: 60, B: 60}
	ShadeEven      = RGB{R: 30, G: 30, B: 34}
	ShadeOdd       = RGB{R: 24, G: 24, B: 28}
)
