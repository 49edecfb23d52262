package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/goswon/pkg/fsutil"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.swon")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t, "a = 1\n")
		got, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "a = 1\n" {
			t.Errorf("content = %q", got)
		}
		if info.Size != 6 || info.Mode.Perm() != 0600 {
			t.Errorf("unexpected info %+v", info)
		}
		if info.Hash == 0 {
			t.Error("Hash should not be zero")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("expected ErrIsDirectory, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(ctx, writeFixture(t, "x"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		_, info, err := fsutil.ReadFile(ctx, writeFixture(t, "a = 1\n"))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil || modified {
			t.Errorf("CheckModified() = %v, %v; want false, nil", modified, err)
		}
	})

	t.Run("same size rewritten", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t, "a = 1\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if err := os.WriteFile(path, []byte("a = 2\n"), 0600); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		// Pin the mtime so only the hash can tell.
		if err := os.Chtimes(path, info.ModTime, info.ModTime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil || !modified {
			t.Errorf("CheckModified() = %v, %v; want true, nil", modified, err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t, "a = 1\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if modified, _ := fsutil.CheckModified(ctx, info); !modified {
			t.Error("deleted file should count as modified")
		}
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		if _, err := fsutil.CheckModified(ctx, nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
			t.Errorf("expected ErrNilFileInfo, got %v", err)
		}
	})
}

func TestWriteBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes and keeps mode", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t, "a=1")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if err := fsutil.WriteBack(ctx, info, []byte("a = 1\n")); err != nil {
			t.Fatalf("WriteBack() error = %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "a = 1\n" {
			t.Errorf("content = %q", got)
		}
		stat, _ := os.Stat(path)
		if stat.Mode().Perm() != 0600 {
			t.Errorf("mode = %o, want 600", stat.Mode().Perm())
		}
	})

	t.Run("refuses concurrent modification", func(t *testing.T) {
		t.Parallel()

		path := writeFixture(t, "a=1")
		_, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		later := info.ModTime.Add(time.Second)
		if err := os.WriteFile(path, []byte("b=22"), 0600); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		_ = os.Chtimes(path, later, later)

		if err := fsutil.WriteBack(ctx, info, []byte("a = 1\n")); !errors.Is(err, fsutil.ErrModified) {
			t.Fatalf("expected ErrModified, got %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "b=22" {
			t.Errorf("file was overwritten: %q", got)
		}
	})
}
