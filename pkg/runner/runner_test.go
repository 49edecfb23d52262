package runner_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/fsutil"
	"github.com/yaklabco/goswon/pkg/runner"
)

var errBoom = errors.New("boom")

// upper rewrites "a = 1" to "A = 1" and fails on files containing "fail".
func upper(_ context.Context, _ string, content []byte) ([]byte, error) {
	if bytes.Contains(content, []byte("fail")) {
		return nil, errBoom
	}
	return bytes.ReplaceAll(content, []byte("a = 1"), []byte("A = 1")), nil
}

func TestRunCheckOnly(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "one.swon", "two.swon")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.swon"), []byte("b = 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.swon"), []byte("fail\n"), 0o644))

	result, err := runner.New(upper).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, filepath.Join(dir, "bad.swon"), result.Files[0].Path)
	require.ErrorIs(t, result.Files[0].Error, errBoom)
	assert.True(t, result.Files[1].Changed)
	assert.Equal(t, "A = 1\n", string(result.Files[1].Output))
	assert.False(t, result.Files[2].Changed)

	assert.Equal(t, runner.Stats{
		FilesDiscovered: 3,
		FilesProcessed:  2,
		FilesChanged:    1,
		FilesErrored:    1,
	}, result.Stats)
	assert.True(t, result.HasChanges())
	assert.True(t, result.HasErrors())

	got, _ := os.ReadFile(filepath.Join(dir, "one.swon"))
	assert.Equal(t, "a = 1\n", string(got), "check-only run must not write")
}

func TestRunWriteWithBackup(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "one.swon")
	r := runner.New(upper)
	r.Write = true
	r.Backup = true

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesWritten)

	path := filepath.Join(dir, "one.swon")
	got, _ := os.ReadFile(path)
	assert.Equal(t, "A = 1\n", string(got))

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "a = 1\n", string(backup))
}

func TestRunNoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.New(upper).Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasChanges())
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	dir := makeTree(t, "one.swon")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.New(upper).Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}
