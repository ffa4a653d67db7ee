package backup

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/paths"
)

// BackupFile copies path to a timestamped sibling before it is overwritten.
// The copy is named <base>.bak.<timestamp> and lives next to the original,
// or under AGENTSYNC_BACKUP_DIR when that is set.
//
// A missing original is not an error: there is nothing to protect, and the
// returned path is empty. Any copy failure wraps errors.ErrBackupFailed so
// callers can refuse to touch the original.
func BackupFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(errors.ErrBackupFailed, "stat %s: %v", path, err)
	}
	if info.IsDir() {
		return "", errors.Wrapf(errors.ErrBackupFailed, "%s is a directory", path)
	}

	dir := paths.FileBackupDir()
	if dir == "" {
		dir = filepath.Dir(path)
	} else if err := paths.EnsureDir(dir, 0); err != nil {
		return "", errors.Wrapf(errors.ErrBackupFailed, "creating backup directory %s: %v", dir, err)
	}

	stamp := time.Now().Format("20060102T150405")
	dst := filepath.Join(dir, filepath.Base(path)+".bak."+stamp)

	if err := copyRegularFile(path, dst, info.Mode()); err != nil {
		return "", errors.Wrapf(errors.ErrBackupFailed, "copying %s: %v", path, err)
	}
	return dst, nil
}

// copyRegularFile copies src to dst, creating dst with the given mode.
func copyRegularFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
