package sync

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/agentsync/internal/backup"
	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

// SourceServersKey is the top-level field of the source document holding
// the record store. The source shares Claude Code's schema.
const SourceServersKey = "mcpServers"

// LoadDocument reads a configuration document from path.
// A missing file yields an empty document: a target that has never been
// configured is a valid sync destination.
func LoadDocument(path string) (mcp.Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return mcp.NewDocument(), nil
		}
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return mcp.ParseDocument(data)
}

// LoadSourceStore reads the source-of-truth record store.
// A missing source file is an error, not an empty store: sync must never
// run against a mistyped source path.
func LoadSourceStore(path string) (mcp.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrSourceMissing, "%s", path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.StoreField(SourceServersKey)
}

// WriteDocument persists a document to path: the existing file is backed
// up first, then the rendered document replaces it atomically. Returns
// the backup path, or empty when no previous file existed.
//
// A failed backup aborts the write and leaves the target untouched.
func WriteDocument(path string, doc mcp.Document) (backupPath string, err error) {
	data, err := doc.Render()
	if err != nil {
		return "", err
	}

	backupPath, err = backup.BackupFile(path)
	if err != nil {
		return "", err
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrapf(err, "creating directory for %s", path)
	}
	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return backupPath, nil
}
