package scry

import (
	"errors"
	"fmt"
)

// ErrSpanJoin indicates that two spans could not be joined because they do
// not come from the same Source. Mixing unrelated texts is a grammar
// composition bug, not a data error.
var ErrSpanJoin = errors.New("the specified spans do not come from the same source")

// Span is an immutable reference to a contiguous range of characters within a
// shared Source. It is just a *Source plus two integers, so it is cheap to
// copy and pass around; the referenced text is extracted on demand and never
// copied eagerly.
type Span struct {
	src        *Source
	start, end int
}

var blankSource = NewSource("")

// BlankSpan returns a span with an empty source and zero-length range.
//
// Blank spans are the join identity: joining a blank span with any other span
// yields the other span unchanged, regardless of its source.
func BlankSpan() Span {
	return Span{src: blankSource}
}

// NewSpan creates a span over the character range [start, end) of src.
// The range is clamped to the bounds of the source at construction.
func NewSpan(src *Source, start, end int) Span {
	if src == nil {
		src = blankSource
	}
	start, end = clampRange(start, end, src.Len())
	return Span{src: src, start: start, end: end}
}

func (s Span) source() *Source {
	if s.src == nil {
		return blankSource
	}
	return s.src
}

// Source returns the Source this span points into.
func (s Span) Source() *Source {
	return s.source()
}

// SourcePath returns the file origin of the span's source, if any.
func (s Span) SourcePath() (string, bool) {
	return s.source().SourcePath()
}

// SourceText computes the text covered by the span as a borrowed view.
func (s Span) SourceText() IndexedSlice {
	return s.source().Slice(s.start, s.end)
}

// Range returns the character range of the span within its source.
func (s Span) Range() (start, end int) {
	return s.start, s.end
}

// ByteRange maps the span's character range to byte offsets in the source.
func (s Span) ByteRange() (start, end int) {
	src := s.source()
	return src.ByteOffset(s.start), src.ByteOffset(s.end)
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.end - s.start
}

// IsBlank reports whether the span covers a zero-length range.
func (s Span) IsBlank() bool {
	return s.start == s.end
}

// Span returns the span itself, satisfying Spanned.
func (s Span) Span() Span {
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.start, s.end)
}

// LineCol is a position within a Source. Both line and column are
// zero-indexed; renderers that want the conventional 1-based line add one.
type LineCol struct {
	Line int
	Col  int
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Start returns the line and column of the start of the span, computed by
// scanning from the beginning of the source. O(offset), not cached.
func (s Span) Start() LineCol {
	return advanceLineCol(LineCol{}, s.source().Slice(0, s.start))
}

// End returns the line and column of the end of the span.
func (s Span) End() LineCol {
	return advanceLineCol(s.Start(), s.source().Slice(s.start, s.end))
}

func advanceLineCol(from LineCol, text IndexedSlice) LineCol {
	for _, r := range text.Chars() {
		if r == '\n' {
			from.Line++
			from.Col = 0
		} else {
			from.Col++
		}
	}
	return from
}

// SourceLine is one source line touched by a span: the full line text and
// the character columns of the line that the span covers.
type SourceLine struct {
	Text     IndexedSlice
	ColStart int
	ColEnd   int
}

// SourceLines returns every source line touched by the span, clipped per
// line: the first touched line starts at the span's start column, interior
// lines are covered in full, and the last touched line ends at the span's
// end column. The result is computed fresh on every call.
func (s Span) SourceLines() []SourceLine {
	start := s.Start()
	end := s.End()
	var out []SourceLine
	for i, line := range s.source().Lines() {
		switch {
		case i == start.Line && i == end.Line:
			out = append(out, SourceLine{Text: line, ColStart: start.Col, ColEnd: end.Col})
		case i == start.Line:
			out = append(out, SourceLine{Text: line, ColStart: start.Col, ColEnd: line.Len()})
		case i > start.Line && i < end.Line:
			out = append(out, SourceLine{Text: line, ColStart: 0, ColEnd: line.Len()})
		case i == end.Line:
			out = append(out, SourceLine{Text: line, ColStart: 0, ColEnd: end.Col})
		}
	}
	return out
}

// Join returns the minimal span covering both s and other: the minimum of the
// starts to the maximum of the ends. This is a coarse union; the inputs need
// not be adjacent or overlapping.
//
// Joining with a blank-source span returns the other operand unchanged.
// Joining two spans from different sources fails with ErrSpanJoin.
func (s Span) Join(other Span) (Span, error) {
	if s.source().IsEmpty() {
		return other, nil
	}
	if other.source().IsEmpty() {
		return s, nil
	}
	if !sameSource(s.source(), other.source()) {
		return Span{}, ErrSpanJoin
	}
	start := min(s.start, other.start)
	end := max(s.end, other.end)
	return Span{src: s.src, start: start, end: end}, nil
}

// JoinSpans folds Join over all given spans. With no arguments it returns
// a blank span.
func JoinSpans(spans ...Span) (Span, error) {
	joined := BlankSpan()
	for _, sp := range spans {
		var err error
		joined, err = joined.Join(sp)
		if err != nil {
			return Span{}, err
		}
	}
	return joined, nil
}

// sameSource treats two sources as equal when they are the same object or
// hold identical text and origin.
func sameSource(a, b *Source) bool {
	if a == b {
		return true
	}
	aPath, aOK := a.SourcePath()
	bPath, bOK := b.SourcePath()
	return a.SourceText() == b.SourceText() && aOK == bOK && aPath == bPath
}

// Spanned is implemented by anything that has a defining Span. Types made of
// several spanned parts should join their children's spans rather than store
// a separate primary span.
type Spanned interface {
	Span() Span
}
