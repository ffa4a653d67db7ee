package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/agentsync/internal/errors"
)

// Manifest format version for forward compatibility.
const ManifestVersion = 1

// DefaultRetention is the default number of snapshots kept per target.
const DefaultRetention = 5

// Sentinel errors for snapshot operations.
var (
	// ErrNoSnapshots indicates no snapshots exist for the specified target.
	ErrNoSnapshots = errors.New("no snapshots found")

	// ErrSnapshotCorrupted indicates snapshot integrity verification failed.
	// A file's SHA256 hash did not match the manifest.
	ErrSnapshotCorrupted = errors.New("snapshot corrupted")

	// ErrNothingToSnapshot indicates none of the requested paths exist yet.
	ErrNothingToSnapshot = errors.New("no files to snapshot")
)

// Manifest contains metadata about a snapshot.
// It is stored as manifest.json in each snapshot directory.
type Manifest struct {
	// Version is the manifest format version for forward compatibility.
	Version int `json:"version"`

	// CreatedAt is when the snapshot was created.
	CreatedAt time.Time `json:"created_at"`

	// Target is the sync target the snapshot belongs to (claude, vscode).
	Target string `json:"target"`

	// Files contains metadata for each file in the snapshot.
	Files []File `json:"files"`

	// ToolVersion is the agentsync version that created this snapshot.
	ToolVersion string `json:"tool_version"`

	// ID is the snapshot identifier (timestamp format: 20260123T100712).
	// Populated when loading from disk, not stored in JSON.
	ID string `json:"-"`
}

// File contains metadata for a single file in a snapshot.
type File struct {
	// OriginalPath is the absolute path the file was copied from.
	OriginalPath string `json:"original_path"`

	// RelPath is the relative path within the snapshot directory.
	RelPath string `json:"rel_path"`

	// SHA256 is the hex-encoded SHA256 hash of the file contents.
	SHA256 string `json:"sha256"`

	// Mode is the file's permission bits.
	Mode fs.FileMode `json:"mode"`
}
