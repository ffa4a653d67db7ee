package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Target identifiers for supported AI coding assistants.
const (
	TargetClaude = "claude"
	TargetVSCode = "vscode"
)

// BackupDirEnv overrides the directory used for pre-write file backups.
// When unset, backups are written next to the file they protect.
const BackupDirEnv = "AGENTSYNC_BACKUP_DIR"

// targetMCPConfigs maps target names to their MCP config file paths
// relative to the user's home directory.
var targetMCPConfigs = map[string]string{
	TargetClaude: ".claude.json",
	TargetVSCode: ".config/Code/User/mcp.json",
}

// targetSkillDirs maps target names to their skill directories relative to
// the user's home directory. Targets without a native skill location are
// absent; syncing skills to them requires an explicit destination.
var targetSkillDirs = map[string]string{
	TargetClaude: ".claude/skills",
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ValidTarget returns true if the target name is recognized.
func ValidTarget(target string) bool {
	_, ok := targetMCPConfigs[target]
	return ok
}

// Targets returns a slice of all supported target identifiers
// in deterministic order.
func Targets() []string {
	return []string{
		TargetClaude,
		TargetVSCode,
	}
}

// MCPConfigPath returns the default MCP config file path for a target.
//
// Target paths:
//   - claude: ~/.claude.json (main user config file, NOT in .claude directory)
//   - vscode: ~/.config/Code/User/mcp.json
//
// Returns an empty string for unknown targets.
func MCPConfigPath(target string) string {
	relPath, ok := targetMCPConfigs[target]
	if !ok {
		return ""
	}
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, relPath)
}

// SkillDir returns the default skill directory for a target, or an empty
// string when the target has no native skill location.
//
// Target paths:
//   - claude: ~/.claude/skills/
//   - vscode: none (requires an explicit destination)
func SkillDir(target string) string {
	relPath, ok := targetSkillDirs[target]
	if !ok {
		return ""
	}
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, relPath)
}

// SnapshotDir returns the root directory for backup snapshots.
// Returns <ConfigHome>/agentsync/backups/
func SnapshotDir() string {
	return filepath.Join(ConfigHome(), "agentsync", "backups")
}

// FileBackupDir returns the directory for pre-write file backups, or an
// empty string when backups should be written next to the protected file.
// It honors the AGENTSYNC_BACKUP_DIR environment variable.
func FileBackupDir() string {
	return os.Getenv(BackupDirEnv)
}
