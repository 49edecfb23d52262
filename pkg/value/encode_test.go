package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/value"
)

func TestToJSONIndent(t *testing.T) {
	t.Parallel()

	doc, err := value.Parse([]byte("b = 1\na = [1, 2]\n"))
	require.NoError(t, err)

	got, err := value.ToJSON(doc, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}\n", string(got))
}

func TestToYAML(t *testing.T) {
	t.Parallel()

	doc, err := value.Parse([]byte("z = 1\nb = \"x\"\nc = [true, null]\nd = {e = \"multi\"}\nt = \"true\"\n"))
	require.NoError(t, err)

	got, err := value.ToYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, "z: 1\nb: x\nc:\n  - true\n  - null\nd:\n  e: multi\nt: \"true\"\n", string(got))
}

func TestToYAMLTaggedValues(t *testing.T) {
	t.Parallel()

	doc, err := value.Parse([]byte("re = regex\"a+\"\ncode = ```go\nx := 1\ny := 2\n```\n"))
	require.NoError(t, err)

	got, err := value.ToYAML(doc)
	require.NoError(t, err)
	assert.Contains(t, string(got), "re: !regex a+\n")
	assert.Contains(t, string(got), "language: go\n")
	assert.Contains(t, string(got), "code: |\n")
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := value.Parse([]byte("x = 1\ny = [true]\n"))
	require.NoError(t, err)
	b, err := value.Parse([]byte("x=1 y=[true,]"))
	require.NoError(t, err)
	c, err := value.Parse([]byte("y = [true]\nx = 1\n"))
	require.NoError(t, err)

	assert.True(t, value.Equal(a, b))
	assert.False(t, value.Equal(a, c), "entry order is significant")
	assert.False(t, value.Equal(value.Integer(1), value.String("1")))
	assert.True(t, value.Equal(value.Null{}, value.Null{}))
}
