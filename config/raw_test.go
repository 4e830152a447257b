package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_VariableInterpolation_replacesEnvironmentVariable(t *testing.T) {
	assertion := assert.New(t)

	t.Setenv("DIRSCAN_TZ", "Europe/Berlin")

	sut := interpolate("__${DIRSCAN_TZ}__")

	assertion.Equal("Europe/Berlin", sut)
}

func Test_VariableInterpolation_ignoresPartialExpressions(t *testing.T) {
	assertion := assert.New(t)

	sut := interpolate("_-${MY_failing_expression}__")

	assertion.Equal("_-${MY_failing_expression}__", sut)
}

func Test_Raw_accessors(t *testing.T) {
	assertion := assert.New(t)
	t.Setenv("DIRSCAN_WORKERS", "6")

	raw, err := ParseFromString(`
name: downloads
enabled: true
disabled: "false"
count: 4
from_env: __${DIRSCAN_WORKERS}__
empty:
`)
	require.NoError(t, err)

	assertion.Equal("downloads", raw.String("name"))
	assertion.True(raw.Bool("enabled"))
	assertion.False(raw.Bool("disabled"))
	assertion.Equal(4, raw.Int("count"))
	assertion.Equal(6, raw.Int("from_env"))
	assertion.True(raw.Has("count"))
	assertion.False(raw.Has("empty"))
	assertion.False(raw.Has("missing"))
	assertion.Equal(0, raw.Int("missing"))
}

func Test_Parse_acceptsEmptyDocument(t *testing.T) {
	raw, err := Parse(strings.NewReader(""))

	assert.NoError(t, err)
	assert.Empty(t, raw)
}
