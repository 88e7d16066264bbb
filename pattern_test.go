package scry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRegexp(t *testing.T) {
	re, err := ToRegexp(`\d+`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("123"))

	_, err = ToRegexp(`(`)
	require.Error(t, err)
}

func TestMustRegexp(t *testing.T) {
	assert.NotPanics(t, func() { MustRegexp(`\w+`) })
	assert.Panics(t, func() { MustRegexp(`(`) })
}
