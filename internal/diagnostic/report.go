// Package diagnostic implements the boxed, caret-underlined error report
// from spec.md §4.9: given a shellerr.Error with positional Context, it
// walks line/column information and renders a multi-line report with
// alternating line-number shading, a caret underline, and a message.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/better-ecosystem/better-shell/internal/shellerr"
	"github.com/better-ecosystem/better-shell/internal/textutil"
)

// Render produces the full diagnostic report for err. useColor controls
// whether SGR escapes are emitted (see ShouldUseColor).
func Render(err *shellerr.Error, useColor bool) string {
	return RenderFields(err.Kind.String(), err.Message, err.Context, useColor)
}

// RenderFields builds the report from raw fields, so callers that don't
// have a shellerr.Error (e.g. the argument parser) can still use the
// same pipeline.
func RenderFields(kind, message string, ctx *shellerr.Context, useColor bool) string {
	spans := buildSpans(kind, message, ctx)
	return RenderSpans(spans, useColor)
}

func buildSpans(kind, message string, ctx *shellerr.Context) []Span {
	var spans []Span
	spans = append(spans, Colored("error: ", ColorKind), Plain(kind+"\n\n"))

	if ctx == nil {
		spans = append(spans, Plain("(no further context)\n"))
		return spans
	}

	line, col := textutil.IndexToLineColumn(ctx.Raw, ctx.Offset)
	lines := textutil.SplitLines(ctx.Raw)

	spans = append(spans,
		Colored("  ╭─[", ColorFrame),
		Colored(ctx.Source, ColorSource),
		Plain(fmt.Sprintf(": %d:%d", line, col)),
		Colored("]\n", ColorFrame),
		Colored("  │\n", ColorFrame),
	)

	gutterWidth := len(fmt.Sprintf("%d", len(lines)))

	for i, content := range lines {
		lineNo := i + 1
		shade := ShadeEven
		if i%2 == 1 {
			shade = ShadeOdd
		}
		numStr := fmt.Sprintf("%*d", gutterWidth, lineNo)
		spans = append(spans,
			Span{BG: &shade, FG: &ColorLineNum, Text: " " + numStr + " "},
			Colored("│ ", ColorFrame),
			Plain(content+"\n"),
		)

		if lineNo == line {
			caretLen := ctx.Length
			if caretLen < 1 {
				caretLen = 1
			}
			pad := strings.Repeat(" ", gutterWidth+col)
			spans = append(spans,
				Colored("  ·", ColorFrame),
				Plain(pad),
				Colored(strings.Repeat("^", caretLen), ColorCaret),
				Plain("\n"),
				Colored("  ·", ColorFrame),
				Plain(pad),
				Colored(message, ColorMessage),
				Plain("\n"),
			)
		}
	}

	spans = append(spans, Colored("  ╰─ "+footer()+"\n", ColorFrame))
	return spans
}

func footer() string {
	return strings.Repeat("─", 20)
}
