package textdiff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/textdiff"
)

func TestComputeNoChanges(t *testing.T) {
	t.Parallel()

	assert.Nil(t, textdiff.Compute("a.swon", []byte("a = 1\n"), []byte("a = 1\n")))
	assert.Nil(t, textdiff.Compute("a.swon", nil, nil))
	assert.False(t, textdiff.Compute("a.swon", nil, nil).HasChanges())
	assert.Empty(t, textdiff.Compute("a.swon", nil, nil).String())
}

func TestComputeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		original string
		modified string
		want     string
	}{
		{
			name:     "replace middle line",
			original: "a\nb\nc\n",
			modified: "a\nB\nc\n",
			want:     "--- a/f.swon\n+++ b/f.swon\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n",
		},
		{
			name:     "from empty",
			original: "",
			modified: "k = 1\n",
			want:     "--- a/f.swon\n+++ b/f.swon\n@@ -0,0 +1,1 @@\n+k = 1\n",
		},
		{
			name:     "to empty",
			original: "k = 1\n",
			modified: "",
			want:     "--- a/f.swon\n+++ b/f.swon\n@@ -1,1 +0,0 @@\n-k = 1\n",
		},
		{
			name:     "formatter output",
			original: "a=1\nb = 2\n",
			modified: "a = 1\nb = 2\n",
			want:     "--- a/f.swon\n+++ b/f.swon\n@@ -1,2 +1,2 @@\n-a=1\n+a = 1\n b = 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diff := textdiff.Compute("f.swon", []byte(tt.original), []byte(tt.modified))
			require.True(t, diff.HasChanges())
			assert.Equal(t, tt.want, diff.String())
		})
	}
}

func TestComputeSplitsDistantHunks(t *testing.T) {
	t.Parallel()

	var orig, mod []string
	for i := range 20 {
		line := strings.Repeat("x", i+1)
		orig = append(orig, line)
		switch i {
		case 1, 17:
			mod = append(mod, line+"!")
		default:
			mod = append(mod, line)
		}
	}

	diff := textdiff.Compute("f", []byte(strings.Join(orig, "\n")+"\n"), []byte(strings.Join(mod, "\n")+"\n"))
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 2)
	assert.Equal(t, 2, diff.Additions)
	assert.Equal(t, 2, diff.Deletions)

	first, second := diff.Hunks[0], diff.Hunks[1]
	assert.Equal(t, 1, first.OriginalStart)
	assert.Equal(t, 5, first.OriginalCount)
	assert.Equal(t, 15, second.OriginalStart)
	assert.Equal(t, 6, second.OriginalCount)
}

func TestComputeMergesCloseHunks(t *testing.T) {
	t.Parallel()

	orig := "1\n2\n3\n4\n5\n6\n7\n8\n"
	mod := "1\nX\n3\n4\n5\n6\nY\n8\n"

	diff := textdiff.ComputeContext("f", []byte(orig), []byte(mod), 2)
	require.NotNil(t, diff)
	require.Len(t, diff.Hunks, 1)
	assert.Equal(t, 8, diff.Hunks[0].OriginalCount)
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+", textdiff.Prefix(textdiff.Add))
	assert.Equal(t, "-", textdiff.Prefix(textdiff.Remove))
	assert.Equal(t, " ", textdiff.Prefix(textdiff.Context))
}
