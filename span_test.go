package scry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanBasics(t *testing.T) {
	src := NewSource("Hello, world!")
	span := NewSpan(src, 0, 5)
	assert.Equal(t, "Hello", span.SourceText().AsString())
	assert.Equal(t, 5, span.Len())
	assert.False(t, span.IsBlank())

	start, end := span.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestSpanClampsAtConstruction(t *testing.T) {
	src := NewSource("abc")
	span := NewSpan(src, 1, 99)
	_, end := span.Range()
	assert.Equal(t, 3, end)

	span = NewSpan(src, 5, 2)
	assert.True(t, span.IsBlank())
}

func TestSpanByteRange(t *testing.T) {
	src := NewSource("h₳o")
	span := NewSpan(src, 1, 3)
	bs, be := span.ByteRange()
	assert.Equal(t, 1, bs)
	assert.Equal(t, 5, be)
	assert.Equal(t, "₳o", span.SourceText().AsString())
}

func TestSpanJoin(t *testing.T) {
	src := NewSource("Hello, world!")
	span1 := NewSpan(src, 0, 5)
	span2 := NewSpan(src, 7, 12)

	joined, err := span1.Join(span2)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", joined.SourceText().AsString())

	// order does not matter
	joined, err = span2.Join(span1)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", joined.SourceText().AsString())
}

func TestSpanJoinBlankIdentity(t *testing.T) {
	src := NewSource("Hello, world!")
	span := NewSpan(src, 7, 12)

	joined, err := BlankSpan().Join(span)
	require.NoError(t, err)
	assert.Equal(t, span, joined)

	joined, err = span.Join(BlankSpan())
	require.NoError(t, err)
	assert.Equal(t, span, joined)

	joined, err = BlankSpan().Join(BlankSpan())
	require.NoError(t, err)
	assert.True(t, joined.IsBlank())
}

func TestSpanJoinDifferentSources(t *testing.T) {
	a := NewSpan(NewSource("one text"), 0, 3)
	b := NewSpan(NewSource("another text"), 0, 3)
	_, err := a.Join(b)
	assert.ErrorIs(t, err, ErrSpanJoin)
}

func TestSpanJoinSameTextDistinctHandles(t *testing.T) {
	// Sources with identical text and origin count as the same source.
	a := NewSpan(NewSource("same"), 0, 2)
	b := NewSpan(NewSource("same"), 3, 4)
	joined, err := a.Join(b)
	require.NoError(t, err)
	start, end := joined.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
}

func TestJoinSpans(t *testing.T) {
	src := NewSource("abcdefgh")
	joined, err := JoinSpans(NewSpan(src, 2, 3), NewSpan(src, 6, 7), NewSpan(src, 0, 1))
	require.NoError(t, err)
	start, end := joined.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)

	joined, err = JoinSpans()
	require.NoError(t, err)
	assert.True(t, joined.IsBlank())
}

func TestSpanStartEnd(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		wantStart  LineCol
		wantEnd    LineCol
	}{
		{"single line", "this is a triumph", 5, 7, LineCol{0, 5}, LineCol{0, 7}},
		{"after newline", "ab\ncd", 3, 5, LineCol{1, 0}, LineCol{1, 2}},
		{"spanning newline", "ab\ncd", 1, 4, LineCol{0, 1}, LineCol{1, 1}},
		{"empty at origin", "abc", 0, 0, LineCol{0, 0}, LineCol{0, 0}},
		{"multibyte counts chars", "₳₳₳x", 3, 4, LineCol{0, 3}, LineCol{0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := NewSpan(NewSource(tt.text), tt.start, tt.end)
			if got := span.Start(); got != tt.wantStart {
				t.Errorf("Start() = %v, want %v", got, tt.wantStart)
			}
			if got := span.End(); got != tt.wantEnd {
				t.Errorf("End() = %v, want %v", got, tt.wantEnd)
			}
		})
	}
}

func TestSpanSourceLines(t *testing.T) {
	src := NewSource("alpha beta\ngamma delta\nepsilon")

	t.Run("single line clipped both sides", func(t *testing.T) {
		lines := NewSpan(src, 6, 10).SourceLines()
		require.Len(t, lines, 1)
		assert.Equal(t, "alpha beta", lines[0].Text.AsString())
		assert.Equal(t, 6, lines[0].ColStart)
		assert.Equal(t, 10, lines[0].ColEnd)
	})

	t.Run("two lines", func(t *testing.T) {
		lines := NewSpan(src, 6, 16).SourceLines()
		require.Len(t, lines, 2)
		assert.Equal(t, "alpha beta", lines[0].Text.AsString())
		assert.Equal(t, 6, lines[0].ColStart)
		assert.Equal(t, 10, lines[0].ColEnd)
		assert.Equal(t, "gamma delta", lines[1].Text.AsString())
		assert.Equal(t, 0, lines[1].ColStart)
		assert.Equal(t, 5, lines[1].ColEnd)
	})

	t.Run("interior line fully covered", func(t *testing.T) {
		lines := NewSpan(src, 6, 26).SourceLines()
		require.Len(t, lines, 3)
		assert.Equal(t, "gamma delta", lines[1].Text.AsString())
		assert.Equal(t, 0, lines[1].ColStart)
		assert.Equal(t, 11, lines[1].ColEnd)
		assert.Equal(t, "epsilon", lines[2].Text.AsString())
		assert.Equal(t, 3, lines[2].ColEnd)
	})

	t.Run("restartable", func(t *testing.T) {
		span := NewSpan(src, 6, 16)
		assert.Equal(t, span.SourceLines(), span.SourceLines())
	})
}

func TestSpannedSpan(t *testing.T) {
	src := NewSource("abc")
	span := NewSpan(src, 1, 2)
	var spanned Spanned = span
	assert.Equal(t, span, spanned.Span())
}
