package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/pkg/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Manager handles snapshot creation, restoration, and pruning.
type Manager struct {
	rootDir   string
	retention int
}

// Option configures a Manager.
type Option func(*Manager)

// WithRootDir sets the root snapshot directory.
func WithRootDir(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.rootDir = dir
		}
	}
}

// WithRetention sets the number of snapshots to retain per target.
func WithRetention(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retention = n
		}
	}
}

// NewManager creates a snapshot Manager with the given options.
// Defaults: snapshots under <ConfigHome>/agentsync/backups/, retention 5.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:   paths.SnapshotDir(),
		retention: DefaultRetention,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Retention returns the configured per-target retention count.
func (m *Manager) Retention() int {
	return m.retention
}

// Snapshot copies the given paths into a new timestamped snapshot for a
// target and writes its manifest. Directories are copied recursively;
// missing paths are skipped. Every file is hashed with SHA256 for later
// integrity verification.
func (m *Manager) Snapshot(target string, srcPaths []string) (*Manifest, error) {
	if target == "" {
		return nil, errors.New("target is required")
	}
	if len(srcPaths) == 0 {
		return nil, errors.New("at least one path is required")
	}

	id := time.Now().Format("20060102T150405")
	snapDir := m.snapshotPath(target, id)

	if err := paths.EnsureDir(snapDir, 0); err != nil {
		return nil, errors.Wrap(err, "creating snapshot directory")
	}

	var files []File
	for _, p := range srcPaths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "stat %s", p)
		}

		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				f, err := m.snapshotFile(path, snapDir)
				if err != nil {
					return err
				}
				files = append(files, *f)
				return nil
			})
			if err != nil {
				return nil, errors.Wrapf(err, "snapshotting directory %s", p)
			}
		} else {
			f, err := m.snapshotFile(p, snapDir)
			if err != nil {
				return nil, errors.Wrapf(err, "snapshotting file %s", p)
			}
			files = append(files, *f)
		}
	}

	if len(files) == 0 {
		os.RemoveAll(snapDir)
		return nil, ErrNothingToSnapshot
	}

	manifest := &Manifest{
		Version:     ManifestVersion,
		CreatedAt:   time.Now().UTC(),
		Target:      target,
		Files:       files,
		ToolVersion: Version,
		ID:          id,
	}

	manifestPath := filepath.Join(snapDir, "manifest.json")
	if err := fileutil.AtomicWriteJSON(manifestPath, manifest); err != nil {
		return nil, errors.Wrap(err, "writing manifest")
	}

	return manifest, nil
}

// snapshotFile copies a single file into the snapshot directory.
func (m *Manager) snapshotFile(src, snapDir string) (*File, error) {
	relPath := storageRelPath(src)
	dst := filepath.Join(snapDir, relPath)

	if err := paths.EnsureDir(filepath.Dir(dst), 0); err != nil {
		return nil, errors.Wrap(err, "creating parent directory")
	}

	hash, mode, err := copyAndHash(src, dst)
	if err != nil {
		return nil, err
	}

	return &File{
		OriginalPath: src,
		RelPath:      relPath,
		SHA256:       hash,
		Mode:         mode,
	}, nil
}

// Restore copies a snapshot's files back to their original locations,
// verifying each file's hash first.
func (m *Manager) Restore(target, id string) error {
	manifest, err := m.Get(target, id)
	if err != nil {
		return err
	}

	snapDir := m.snapshotPath(target, id)

	for _, f := range manifest.Files {
		src := filepath.Join(snapDir, f.RelPath)

		hash, err := hashFile(src)
		if err != nil {
			return errors.Wrapf(err, "reading snapshot file %s", f.RelPath)
		}
		if hash != f.SHA256 {
			return errors.Wrapf(ErrSnapshotCorrupted, "file %s hash mismatch", f.RelPath)
		}

		if err := paths.EnsureDir(filepath.Dir(f.OriginalPath), 0); err != nil {
			return errors.Wrapf(err, "creating directory for %s", f.OriginalPath)
		}
		if _, _, err := copyAndHash(src, f.OriginalPath); err != nil {
			return errors.Wrapf(err, "restoring %s", f.OriginalPath)
		}
		if err := os.Chmod(f.OriginalPath, f.Mode); err != nil {
			return errors.Wrapf(err, "setting permissions for %s", f.OriginalPath)
		}
	}

	return nil
}

// List returns all snapshots for a target, newest first.
func (m *Manager) List(target string) ([]Manifest, error) {
	if target == "" {
		return nil, errors.New("target is required")
	}

	entries, err := os.ReadDir(m.targetDir(target))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshots
		}
		return nil, errors.Wrap(err, "reading snapshot directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(target, entry.Name())
		if err != nil {
			// Skip directories without a readable manifest.
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoSnapshots
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return manifests, nil
}

// Prune removes snapshots beyond the given count, keeping the newest.
func (m *Manager) Prune(target string, keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List(target)
	if err != nil {
		if errors.Is(err, ErrNoSnapshots) {
			return nil
		}
		return err
	}

	for i := keep; i < len(manifests); i++ {
		snapDir := m.snapshotPath(target, manifests[i].ID)
		if err := os.RemoveAll(snapDir); err != nil {
			return errors.Wrapf(err, "removing snapshot %s", manifests[i].ID)
		}
	}

	return nil
}

// Get returns the manifest for a specific snapshot.
func (m *Manager) Get(target, id string) (*Manifest, error) {
	if target == "" {
		return nil, errors.New("target is required")
	}
	if id == "" {
		return nil, errors.New("snapshot ID is required")
	}

	data, err := os.ReadFile(filepath.Join(m.snapshotPath(target, id), "manifest.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoSnapshots, "snapshot %s not found", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	manifest.ID = id
	return &manifest, nil
}

func (m *Manager) snapshotPath(target, id string) string {
	return filepath.Join(m.targetDir(target), id)
}

func (m *Manager) targetDir(target string) string {
	return filepath.Join(m.rootDir, target)
}

// hashFile computes the SHA256 hash of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "reading file")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyAndHash copies src to dst and returns the SHA256 hash and mode.
// The destination ends up with the source file's permissions.
func copyAndHash(src, dst string) (hash string, mode fs.FileMode, err error) {
	in, err := os.Open(src)
	if err != nil {
		return "", 0, errors.Wrap(err, "opening source file")
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", 0, errors.Wrap(err, "stat source file")
	}
	mode = info.Mode()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, errors.Wrap(err, "creating destination file")
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(out, h), in); err != nil {
		out.Close()
		return "", 0, errors.Wrap(err, "copying file")
	}
	if err := out.Close(); err != nil {
		return "", 0, errors.Wrap(err, "closing destination file")
	}
	if err := os.Chmod(dst, mode); err != nil {
		return "", 0, errors.Wrap(err, "setting permissions")
	}

	return hex.EncodeToString(h.Sum(nil)), mode, nil
}

// storageRelPath maps an absolute path to a relative path inside the
// snapshot directory, keeping the original layout recognizable.
func storageRelPath(absPath string) string {
	clean := filepath.Clean(absPath)
	if filepath.IsAbs(clean) && len(clean) > 0 && clean[0] == filepath.Separator {
		clean = clean[1:]
	}
	return clean
}
