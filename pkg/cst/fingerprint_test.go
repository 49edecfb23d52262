package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "k = 1\n")
	b := mustParse(t, "k = 1\n")
	c := mustParse(t, "k   =   1 // note\n")
	d := mustParse(t, "k = 2\n")

	assert.Equal(t, a.Fingerprint([]byte("k = 1\n")), b.Fingerprint([]byte("k = 1\n")))
	assert.NotEqual(t, a.Fingerprint([]byte("k = 1\n")), c.Fingerprint([]byte("k   =   1 // note\n")))
	assert.Equal(t,
		a.SignificantFingerprint([]byte("k = 1\n")),
		c.SignificantFingerprint([]byte("k   =   1 // note\n")))
	assert.NotEqual(t,
		a.SignificantFingerprint([]byte("k = 1\n")),
		d.SignificantFingerprint([]byte("k = 2\n")))
}

func TestFingerprintIgnoresOrigin(t *testing.T) {
	t.Parallel()

	src := []byte("k = 1")
	tree := mustParse(t, string(src))
	want := tree.Fingerprint(src)

	one := findFirst(t, tree, cst.TokInteger.Kind())
	cmds := cst.NewCommands(tree)
	cmds.ReplaceNode(one, cmds.InsertDynamicTerminal(cst.TokInteger, "1"))
	require.NoError(t, cmds.ApplyTo(tree))

	assert.Equal(t, want, tree.Fingerprint(src))
}

func TestRenderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"\n\n",
		"// only a comment",
		"k = 1",
		"a.b.c = \"x\\ty\"\n",
		"@ section\nk: text to end of line\r\nj = raw\"\\d+\"\n",
		"list[] = 1\nlist[] = 2\nitems[0] = [1,2 , 3]\n",
		"obj = {a = 1,b = { c = null }}\n",
		"s = \"a\" \\\n  \"b\"\n",
		"c = `x`\nn = sql`select 1`\n",
		"blk = ```\n\nline\n```\n",
		"@a {\n  x = 1\n  @b\n  y = 2\n}\n",
		"k = -12_000 /* block\n comment */\n",
	}

	for _, src := range tests {
		tree := mustParse(t, src)
		assert.Equal(t, src, string(tree.Render([]byte(src))))
	}
}
