package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scry"
)

func TestParseUint64(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValue uint64
		wantText  string
	}{
		{"zero", "0", 0, "0"},
		{"simple", "42", 42, "42"},
		{"leading zeros preserved in span", "00078358885", 78358885, "00078358885"},
		{"max uint64", "18446744073709551615", 18446744073709551615, "18446744073709551615"},
		{"stops at non-digit", "123abc", 123, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := scry.StreamString(tt.text)
			parsed, err := scry.Parse[Uint64](st)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, parsed.Value())
			assert.Equal(t, tt.wantText, parsed.Unparse())
			assert.Equal(t, tt.wantText, parsed.Span().SourceText().AsString())
		})
	}
}

func TestParseUint64SpanCoversLeadingZeros(t *testing.T) {
	st := scry.StreamString("00078358885")
	parsed, err := scry.Parse[Uint64](st)
	require.NoError(t, err)

	start, end := parsed.Span().Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 11, end)
	assert.Equal(t, uint64(78358885), parsed.Value())
}

func TestParseUint64TooLarge(t *testing.T) {
	st := scry.StreamString("123456789012345678901234567890")
	_, err := scry.Parse[Uint64](st)
	require.Error(t, err)

	var parseErr *scry.Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "number too large", parseErr.Message())
	// the error span covers the whole digit run
	start, end := parseErr.Span().Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 30, end)
}

func TestParseUint64NotANumber(t *testing.T) {
	st := scry.StreamString("hey")
	_, err := scry.Parse[Uint64](st)
	require.Error(t, err)
	assert.Equal(t, 0, st.Position())
}

func TestUint64Narrowing(t *testing.T) {
	parsed, err := scry.ParseText[Uint64]("200")
	require.NoError(t, err)

	b, err := parsed.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(200), b)

	parsed, err = scry.ParseText[Uint64]("300")
	require.NoError(t, err)
	_, err = parsed.Uint8()
	require.Error(t, err)

	w, err := parsed.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(300), w)
}

func TestParseValueUint64(t *testing.T) {
	st := scry.StreamString("42 rest")
	parsed, err := scry.ParseValue(st, Uint64Of(42))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), parsed.Value())
	assert.Equal(t, 2, st.Position())

	st = scry.StreamString("43 rest")
	_, err = scry.ParseValue(st, Uint64Of(42))
	require.Error(t, err)
}

func TestParseInt64(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValue int64
	}{
		{"positive", "42", 42},
		{"negative", "-42", -42},
		{"zero", "0", 0},
		{"max int64", "9223372036854775807", 9223372036854775807},
		{"min int64", "-9223372036854775808", -9223372036854775808},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := scry.ParseText[Int64Lit](tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, parsed.Value())
			assert.Equal(t, tt.text, parsed.Unparse())
		})
	}
}

func TestParseInt64TooLarge(t *testing.T) {
	for _, text := range []string{"9223372036854775808", "-9223372036854775809"} {
		_, err := scry.ParseText[Int64Lit](text)
		require.Error(t, err, text)
		var parseErr *scry.Error
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "number too large", parseErr.Message())
	}
}

func TestParseInt64BareMinusFails(t *testing.T) {
	_, err := scry.ParseText[Int64Lit]("-x")
	require.Error(t, err)
}

func TestInt64Narrowing(t *testing.T) {
	parsed, err := scry.ParseText[Int64Lit]("-129")
	require.NoError(t, err)
	_, err = parsed.Int8()
	require.Error(t, err)

	h, err := parsed.Int16()
	require.NoError(t, err)
	assert.Equal(t, int16(-129), h)

	w, err := parsed.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(-129), w)
}

func TestDetachedNumberUnparse(t *testing.T) {
	assert.Equal(t, "42", Uint64Of(42).Unparse())
	assert.Equal(t, "-7", Int64Of(-7).Unparse())
}
