package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/goswon/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file with default mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.swon")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("k = 1\n"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "k = 1\n" {
			t.Errorf("content = %q", got)
		}

		stat, _ := os.Stat(path)
		if stat.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode().Perm(), fsutil.DefaultFileMode)
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("temp files left behind: %v", entries)
		}
	})

	t.Run("missing directory leaves nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.swon")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err == nil {
			t.Fatal("expected error for missing directory")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.swon")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("a = 1\n"), 0)
	if err != nil || !written {
		t.Fatalf("first write = %v, %v; want true, nil", written, err)
	}

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a = 1\n"), 0)
	if err != nil || written {
		t.Fatalf("identical write = %v, %v; want false, nil", written, err)
	}

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a = 2\n"), 0)
	if err != nil || !written {
		t.Fatalf("changed write = %v, %v; want true, nil", written, err)
	}
}

func TestBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeFixture(t, "original")

	created, err := fsutil.CreateBackup(ctx, path)
	if err != nil || !created {
		t.Fatalf("CreateBackup() = %v, %v; want true, nil", created, err)
	}

	if err := os.WriteFile(path, []byte("second"), 0600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	created, err = fsutil.CreateBackup(ctx, path)
	if err != nil || created {
		t.Fatalf("second CreateBackup() = %v, %v; want false, nil", created, err)
	}

	restored, err := fsutil.RestoreBackup(ctx, path)
	if err != nil || !restored {
		t.Fatalf("RestoreBackup() = %v, %v; want true, nil", restored, err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "original" {
		t.Errorf("restored content = %q, want %q", got, "original")
	}
	if _, err := os.Stat(fsutil.BackupPath(path)); !os.IsNotExist(err) {
		t.Error("backup should be removed after restore")
	}

	restored, err = fsutil.RestoreBackup(ctx, path)
	if err != nil || restored {
		t.Errorf("RestoreBackup() without backup = %v, %v; want false, nil", restored, err)
	}
}
