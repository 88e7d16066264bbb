package scry

import (
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source is an immutable, shareable text buffer plus optional file origin.
// Many Spans and ParseStreams across a whole parse tree hold the same *Source;
// nothing mutates it after construction apart from SetPath, which is a
// pre-parse setup call.
//
// Source embeds the character-indexed representation, so all IndexedString
// operations (Len, CharAt, Slice, ...) apply to it directly.
type Source struct {
	*IndexedString
	path    string
	hasPath bool
}

// NewSource wraps in-memory text with no file origin.
func NewSource(text string) *Source {
	return &Source{IndexedString: NewIndexedString(text)}
}

// SourceFromFile reads path and returns a Source carrying that path as its
// origin. The content is normalized the way source files usually are: a
// leading BOM is stripped, UTF-16 input (detected by BOM) is transcoded to
// UTF-8, and CRLF line endings become LF.
//
// Since no interpretation of the content happens at this stage, only I/O or
// encoding errors are returned, never parse errors.
func SourceFromFile(path string) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content, err := decodeFileBytes(raw)
	if err != nil {
		return nil, err
	}
	content, _ = normalizeCRLF(content)
	return &Source{
		IndexedString: NewIndexedString(string(content)),
		path:          filepath.ToSlash(filepath.Clean(path)),
		hasPath:       true,
	}, nil
}

// SourceText returns the underlying text with original formatting.
func (s *Source) SourceText() string {
	return s.IndexedString.AsString()
}

// SourcePath returns the path this Source was read from, if it has one.
func (s *Source) SourcePath() (string, bool) {
	return s.path, s.hasPath
}

// SetPath records (or clears, with "") the file origin of this Source.
func (s *Source) SetPath(path string) {
	s.path = path
	s.hasPath = path != ""
}

// decodeFileBytes strips a UTF-8 BOM or transcodes UTF-16 content to UTF-8,
// based on the leading byte order mark. Content without a BOM passes through
// untouched.
func decodeFileBytes(content []byte) ([]byte, error) {
	switch {
	case len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF:
		return content[3:], nil
	case len(content) >= 2 && content[0] == 0xFF && content[1] == 0xFE:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, content[2:])
		return out, err
	case len(content) >= 2 && content[0] == 0xFE && content[1] == 0xFF:
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, content[2:])
		return out, err
	}
	return content, nil
}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the new content and whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	hasCR := false
	for _, b := range content {
		if b == '\r' {
			hasCR = true
			break
		}
	}
	if !hasCR {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}
