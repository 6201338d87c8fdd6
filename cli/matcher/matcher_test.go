package matcher

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TykTechnologies/regexcache"
)

func TestRunSelectsMatchingLines(t *testing.T) {
	input := "alpha 1\nbeta 2\nalpha 3\n"

	var out bytes.Buffer
	count, err := Run(`^alpha`, regexcache.Options{}, false, strings.NewReader(input), &out)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "alpha 1\nalpha 3\n", out.String())
}

func TestRunInvertSelectsRest(t *testing.T) {
	input := "alpha 1\nbeta 2\nalpha 3\n"

	var out bytes.Buffer
	count, err := Run(`^alpha`, regexcache.Options{}, true, strings.NewReader(input), &out)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "beta 2\n", out.String())
}

func TestRunIgnoreCase(t *testing.T) {
	input := "ALPHA\nbeta\n"
	opts := regexcache.Options{CaseInsensitive: true}

	var out bytes.Buffer
	count, err := Run("alpha", opts, false, strings.NewReader(input), &out)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "ALPHA\n", out.String())
}

func TestRunRejectsBadPattern(t *testing.T) {
	var out bytes.Buffer
	count, err := Run("[broken(", regexcache.Options{}, false, strings.NewReader("x\n"), &out)

	assert.Equal(t, 0, count)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunEmptyInput(t *testing.T) {
	var out bytes.Buffer
	count, err := Run("anything", regexcache.Options{}, false, strings.NewReader(""), &out)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
