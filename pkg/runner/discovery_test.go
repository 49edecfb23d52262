package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/runner"
)

func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))
	}
	return dir
}

func abs(dir string, rel ...string) []string {
	out := make([]string, 0, len(rel))
	for _, r := range rel {
		out = append(out, filepath.Join(dir, r))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	files := []string{
		"root.swon",
		"conf/app.swon",
		"conf/App.SWON",
		"conf/notes.txt",
		"vendor/dep.swon",
		"deep/a/b/c.swon",
		".hidden/x.swon",
		"conf/.secret.swon",
	}

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "directory",
			opts: runner.Options{},
			want: []string{"conf/App.SWON", "conf/app.swon", "deep/a/b/c.swon", "root.swon", "vendor/dep.swon"},
		},
		{
			name: "exclude directory glob",
			opts: runner.Options{ExcludeGlobs: []string{"vendor/**"}},
			want: []string{"conf/App.SWON", "conf/app.swon", "deep/a/b/c.swon", "root.swon"},
		},
		{
			name: "exclude base name",
			opts: runner.Options{ExcludeGlobs: []string{"app.swon", "**/c.swon"}},
			want: []string{"conf/App.SWON", "root.swon", "vendor/dep.swon"},
		},
		{
			name: "include glob",
			opts: runner.Options{IncludeGlobs: []string{"deep/**"}},
			want: []string{"deep/a/b/c.swon"},
		},
		{
			name: "explicit paths deduplicated",
			opts: runner.Options{Paths: []string{"conf", "conf/app.swon", "conf/notes.txt"}},
			want: []string{"conf/App.SWON", "conf/app.swon", "conf/notes.txt"},
		},
		{
			name: "custom extension",
			opts: runner.Options{Paths: []string{"conf"}, Extensions: []string{".txt"}},
			want: []string{"conf/notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := makeTree(t, files...)
			opts := tt.opts
			opts.WorkingDir = dir

			got, err := runner.Discover(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, abs(dir, tt.want...), got)
		})
	}
}

func TestDiscoverExcludeRelativeToWalkedRoot(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "keep.swon", "vendor/skip.swon", "sub/vendor/deep.swon")

	got, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   t.TempDir(),
		Paths:        []string{dir},
		ExcludeGlobs: []string{"vendor/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "keep.swon", "sub/vendor/deep.swon"), got)

	got, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir:   t.TempDir(),
		Paths:        []string{dir},
		IncludeGlobs: []string{"sub/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "sub/vendor/deep.swon"), got)
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"missing.swon"},
	})
	require.Error(t, err)
}

func TestDiscoverSymlinks(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "real/a.swon")
	target := filepath.Join(dir, "real")
	link := filepath.Join(dir, "tree", "link")
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0o755))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	opts := runner.Options{WorkingDir: dir, Paths: []string{"tree"}}
	got, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, got)

	opts.FollowSymlinks = true
	got, err = runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(target, "a.swon")}, got)
}
