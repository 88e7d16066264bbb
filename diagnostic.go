package scry

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Severity is the importance of a Diagnostic.
type Severity uint8

const (
	// SevError is for errors that prevent a parse from succeeding.
	SevError Severity = iota
	// SevWarning is for suspicious but accepted input.
	SevWarning
	// SevNote attaches related context to another diagnostic.
	SevNote
	// SevHelp suggests how to fix a reported problem.
	SevHelp
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevNote:
		return "note"
	case SevHelp:
		return "help"
	}
	return "unknown"
}

// Diagnostic is one reportable fact about a region of text: a severity, a
// span anchoring it, a message, and optionally a context name and child
// diagnostics for related facts.
//
// Its String method renders the canonical compiler-style block: the message,
// a location line, and the touched source lines with carets underlining the
// flagged columns, followed by the children rendered the same way.
type Diagnostic struct {
	severity    Severity
	span        Span
	message     string
	contextName string
	children    []Diagnostic
}

// NewDiagnostic creates a diagnostic with the given severity, span and
// message and no children.
func NewDiagnostic(severity Severity, span Span, message string) Diagnostic {
	return Diagnostic{severity: severity, span: span, message: message}
}

// WithContextName returns a copy with the context name set. The context name
// labels the input in the location line when the source has no file path.
func (d Diagnostic) WithContextName(name string) Diagnostic {
	d.contextName = name
	return d
}

// WithChildren returns a copy with the given children appended.
func (d Diagnostic) WithChildren(children ...Diagnostic) Diagnostic {
	d.children = append(d.children[:len(d.children):len(d.children)], children...)
	return d
}

// AddChild appends a related sub-diagnostic.
func (d *Diagnostic) AddChild(child Diagnostic) {
	d.children = append(d.children, child)
}

// SetSeverity replaces the severity.
func (d *Diagnostic) SetSeverity(severity Severity) {
	d.severity = severity
}

// SetMessage replaces the message.
func (d *Diagnostic) SetMessage(message string) {
	d.message = message
}

// SetContextName replaces the context name; "" clears it.
func (d *Diagnostic) SetContextName(name string) {
	d.contextName = name
}

// Severity returns the severity.
func (d Diagnostic) Severity() Severity {
	return d.severity
}

// Span returns the span this diagnostic is anchored to.
func (d Diagnostic) Span() Span {
	return d.span
}

// Message returns the message.
func (d Diagnostic) Message() string {
	return d.message
}

// ContextName returns the context name, defaulting to "input" when unset.
func (d Diagnostic) ContextName() string {
	if d.contextName == "" {
		return "input"
	}
	return d.contextName
}

// Children returns the child diagnostics.
func (d Diagnostic) Children() []Diagnostic {
	return d.children
}

// MergedSpan joins the diagnostic's own span with the merged spans of all
// descendants, giving the minimal span covering the whole tree. It fails
// with ErrSpanJoin if descendants reference different sources.
func (d Diagnostic) MergedSpan() (Span, error) {
	merged := d.span
	for _, child := range d.children {
		childSpan, err := child.MergedSpan()
		if err != nil {
			return Span{}, err
		}
		merged, err = merged.Join(childSpan)
		if err != nil {
			return Span{}, err
		}
	}
	return merged, nil
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	d.render(&sb, plainStyle)
	return sb.String()
}

// render writes the canonical layout:
//
//	<severity>: <message>
//	<pad> --> <path-or-context>:<line+1>:<col>
//	<pad> |
//	<line#> | <source line text>
//	<pad>    <spaces><carets over the flagged columns>
//	... repeated per touched line, then children.
//
// The gutter width is the digit count of the 1-indexed starting line number
// and stays constant for the whole block.
func (d Diagnostic) render(sb *strings.Builder, style renderStyle) {
	sb.WriteString(style.severity(d.severity, d.severity.String()))
	sb.WriteString(": ")
	sb.WriteString(d.message)
	sb.WriteByte('\n')

	start := d.span.Start()
	numWidth := decimalWidth(start.Line + 1)

	sb.WriteString(strings.Repeat(" ", numWidth-1))
	sb.WriteString(style.gutter(" --> "))
	if path, ok := d.span.SourcePath(); ok {
		sb.WriteString(path)
	} else {
		sb.WriteString(d.ContextName())
	}
	sb.WriteString(style.gutter(lineColSuffix(start)))
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat(" ", numWidth))
	sb.WriteString(style.gutter(" |"))
	sb.WriteByte('\n')

	for i, line := range d.span.SourceLines() {
		sb.WriteString(style.gutter(strconv.Itoa(i + start.Line + 1)))
		sb.WriteString(style.gutter(" | "))
		sb.WriteString(line.Text.AsString())
		sb.WriteByte('\n')

		sb.WriteString(strings.Repeat(" ", numWidth))
		sb.WriteString("   ")
		writeCaretRow(sb, line, style)
		sb.WriteByte('\n')
	}

	for _, child := range d.children {
		child.render(sb, style)
	}
}

// writeCaretRow underlines the flagged columns of one source line. A flagged
// column gets a space instead of a caret when it is whitespace and either the
// previous flagged column was whitespace or the next column is; that keeps
// runs of whitespace unmarked while still ticking isolated boundaries.
// Caret cells track display width so wide runes stay underlined correctly.
func writeCaretRow(sb *strings.Builder, line SourceLine, style renderStyle) {
	chars := line.Text.Chars()
	pad := 0
	for _, r := range chars[:min(line.ColStart, len(chars))] {
		pad += runewidth.RuneWidth(r)
	}
	sb.WriteString(strings.Repeat(" ", pad))

	prev := false
	for i := line.ColStart; i < line.ColEnd; i++ {
		if i >= len(chars) {
			sb.WriteByte(' ')
			prev = true
			continue
		}
		r := chars[i]
		cells := runewidth.RuneWidth(r)
		if cells == 0 {
			continue
		}
		current := unicode.IsSpace(r)
		next := i+1 < len(chars) && unicode.IsSpace(chars[i+1])
		if current && (next || prev) {
			sb.WriteString(strings.Repeat(" ", cells))
		} else {
			sb.WriteString(style.caret(strings.Repeat("^", cells)))
		}
		prev = current
	}
}

func lineColSuffix(lc LineCol) string {
	return ":" + strconv.Itoa(lc.Line+1) + ":" + strconv.Itoa(lc.Col)
}

func decimalWidth(n int) int {
	width := 1
	for n >= 10 {
		width++
		n /= 10
	}
	return width
}
