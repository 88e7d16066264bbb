package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scry"
)

func TestParseAnyOf(t *testing.T) {
	st := scry.StreamString("this 99.2 is really cool")
	parsed, err := ParseAnyOf(st, "yo", "this", "this 99.2")
	require.NoError(t, err)

	// first match wins, not longest
	assert.Equal(t, 1, parsed.Index())
	assert.Equal(t, "this", parsed.Unparse())
	assert.Equal(t, 4, st.Position())
}

func TestParseAnyOfNoMatch(t *testing.T) {
	st := scry.StreamString("zebra")
	_, err := ParseAnyOf(st, "cat", "dog")
	require.Error(t, err)

	var parseErr *scry.Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "expected one of `cat`, `dog`", parseErr.Message())
	assert.Equal(t, 0, st.Position())
}

func TestParseIAnyOf(t *testing.T) {
	st := scry.StreamString("HELLO world")
	parsed, err := ParseIAnyOf(st, "goodbye ", "hello ")
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Index())
	// the result carries the input's original case
	assert.Equal(t, "HELLO ", parsed.Unparse())
}
