package scry

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// RenderOptions controls how a Diagnostic is written by Render.
type RenderOptions struct {
	// Color enables ANSI colors for the severity, gutter and carets.
	// The plain layout (what String returns) is unaffected.
	Color bool
}

// Render writes the diagnostic block to w. With colors disabled the output
// is byte-identical to String.
func (d Diagnostic) Render(w io.Writer, opts RenderOptions) error {
	style := plainStyle
	if opts.Color {
		style = colorStyle()
	}
	var sb strings.Builder
	d.render(&sb, style)
	_, err := io.WriteString(w, sb.String())
	return err
}

// renderStyle is the set of hooks the renderer runs every decorated fragment
// through. The plain style is the identity, so the canonical layout stays
// byte-stable.
type renderStyle struct {
	severity func(Severity, string) string
	gutter   func(string) string
	caret    func(string) string
}

var plainStyle = renderStyle{
	severity: func(_ Severity, s string) string { return s },
	gutter:   func(s string) string { return s },
	caret:    func(s string) string { return s },
}

func colorStyle() renderStyle {
	// EnableColor overrides the terminal auto-detection; the caller already
	// decided colors are wanted.
	red := color.New(color.FgRed, color.Bold)
	red.EnableColor()
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.EnableColor()
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.EnableColor()
	green := color.New(color.FgGreen, color.Bold)
	green.EnableColor()
	blue := color.New(color.FgBlue, color.Bold)
	blue.EnableColor()

	severityColor := func(sev Severity) *color.Color {
		switch sev {
		case SevError:
			return red
		case SevWarning:
			return yellow
		case SevNote:
			return cyan
		case SevHelp:
			return green
		}
		return blue
	}

	return renderStyle{
		severity: func(sev Severity, s string) string { return severityColor(sev).Sprint(s) },
		gutter:   func(s string) string { return blue.Sprint(s) },
		caret:    func(s string) string { return red.Sprint(s) },
	}
}
