package scry

import "strings"

// IndexedString owns a UTF-8 string together with its decoded runes and the
// byte offset of every rune. Character-indexed operations (Len, CharAt, Slice)
// are O(1) or O(slice length); byte-exact text extraction for a character
// range goes through the offset table instead of re-scanning the bytes.
//
// Immutable once built. Slices returned by Slice borrow the backing string and
// never copy text.
type IndexedString struct {
	chars   []rune
	offsets []int
	str     string
}

// NewIndexedString decodes text into an IndexedString. O(n).
func NewIndexedString(text string) *IndexedString {
	is := &IndexedString{str: text}
	is.chars = make([]rune, 0, len(text))
	is.offsets = make([]int, 0, len(text))
	for i, r := range text {
		is.chars = append(is.chars, r)
		is.offsets = append(is.offsets, i)
	}
	return is
}

// IndexedStringFromRunes builds an IndexedString by encoding the given runes.
func IndexedStringFromRunes(runes []rune) *IndexedString {
	return NewIndexedString(string(runes))
}

// Len returns the number of characters (runes), not bytes.
func (is *IndexedString) Len() int {
	return len(is.chars)
}

// ByteLen returns the number of bytes in the backing string.
func (is *IndexedString) ByteLen() int {
	return len(is.str)
}

// IsEmpty reports whether the string has no characters.
func (is *IndexedString) IsEmpty() bool {
	return len(is.chars) == 0
}

// CharAt returns the character at index i. The second result is false iff
// i is out of range; CharAt never panics.
func (is *IndexedString) CharAt(i int) (rune, bool) {
	if i < 0 || i >= len(is.chars) {
		return 0, false
	}
	return is.chars[i], true
}

// Chars returns the decoded characters. The slice is shared, not copied;
// callers must not modify it.
func (is *IndexedString) Chars() []rune {
	return is.chars
}

// AsString returns the backing string.
func (is *IndexedString) AsString() string {
	return is.str
}

func (is *IndexedString) String() string {
	return is.str
}

// Contains reports whether the text contains substr.
func (is *IndexedString) Contains(substr string) bool {
	return strings.Contains(is.str, substr)
}

// EqualString compares by byte content, regardless of the backing buffer.
func (is *IndexedString) EqualString(s string) bool {
	return is.str == s
}

// ByteOffset maps a character index to its byte offset in the backing string.
// Indexes at or past the end map to ByteLen; negative indexes map to 0.
func (is *IndexedString) ByteOffset(charIndex int) int {
	if charIndex < 0 {
		return 0
	}
	if charIndex >= len(is.offsets) {
		return len(is.str)
	}
	return is.offsets[charIndex]
}

// Slice returns a view over the character range [start, end). The range is
// clamped to [0, Len()]; an inverted or out-of-range request yields an empty
// slice, never a panic.
func (is *IndexedString) Slice(start, end int) IndexedSlice {
	start, end = clampRange(start, end, len(is.chars))
	return IndexedSlice{src: is, start: start, end: end}
}

// SliceFrom returns a view from start to the end of the string.
func (is *IndexedString) SliceFrom(start int) IndexedSlice {
	return is.Slice(start, len(is.chars))
}

// SliceTo returns a view from the beginning of the string to end.
func (is *IndexedString) SliceTo(end int) IndexedSlice {
	return is.Slice(0, end)
}

// Lines splits the text into lines on '\n'. Line text excludes the newline
// itself; text after the final newline forms the last line, and a trailing
// newline does not produce an empty extra line.
func (is *IndexedString) Lines() []IndexedSlice {
	var lines []IndexedSlice
	start := 0
	for i, r := range is.chars {
		if r == '\n' {
			lines = append(lines, is.Slice(start, i))
			start = i + 1
		}
	}
	if start < len(is.chars) {
		lines = append(lines, is.Slice(start, len(is.chars)))
	}
	return lines
}

func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}
	return start, end
}

// IndexedSlice is a borrowed view over a character range of an IndexedString.
// It stores only the owning string and two character indices; the text is
// never copied. The range is already clamped to valid bounds at construction.
type IndexedSlice struct {
	src        *IndexedString
	start, end int
}

// Len returns the number of characters covered by the slice.
func (s IndexedSlice) Len() int {
	return s.end - s.start
}

// ByteLen returns the number of bytes covered by the slice.
func (s IndexedSlice) ByteLen() int {
	return s.src.ByteOffset(s.end) - s.src.ByteOffset(s.start)
}

// IsEmpty reports whether the slice covers no characters.
func (s IndexedSlice) IsEmpty() bool {
	return s.start >= s.end
}

// CharAt returns the character at index i relative to the slice start.
func (s IndexedSlice) CharAt(i int) (rune, bool) {
	if i < 0 || s.start+i >= s.end {
		return 0, false
	}
	return s.src.chars[s.start+i], true
}

// Chars returns the characters covered by the slice, shared with the owner.
func (s IndexedSlice) Chars() []rune {
	return s.src.chars[s.start:s.end]
}

// AsString returns the byte-exact original text for the covered range.
func (s IndexedSlice) AsString() string {
	return s.src.str[s.src.ByteOffset(s.start):s.src.ByteOffset(s.end)]
}

func (s IndexedSlice) String() string {
	return s.AsString()
}

// EqualString compares by byte content.
func (s IndexedSlice) EqualString(text string) bool {
	return s.AsString() == text
}

// Slice re-slices the view; start and end are relative to this slice and are
// clamped to its bounds.
func (s IndexedSlice) Slice(start, end int) IndexedSlice {
	start, end = clampRange(start, end, s.end-s.start)
	return IndexedSlice{src: s.src, start: s.start + start, end: s.start + end}
}
