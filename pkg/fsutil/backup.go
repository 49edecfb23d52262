package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is the suffix used for sidecar backup files.
const BackupSuffix = ".swon.bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup unless one already exists,
// so repeated runs keep the oldest content. Returns true if a backup was written.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	backupPath := BackupPath(path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, info, err := ReadFile(ctx, path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}
	if err := WriteAtomic(ctx, backupPath, content, info.Mode.Perm()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup restores path from its sidecar backup and removes the backup.
// Returns false if no backup exists.
func RestoreBackup(ctx context.Context, path string) (bool, error) {
	backupPath := BackupPath(path)
	content, info, err := ReadFile(ctx, backupPath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read backup: %w", err)
	}
	if err := WriteAtomic(ctx, path, content, info.Mode.Perm()); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}
	if err := os.Remove(backupPath); err != nil {
		return true, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}
