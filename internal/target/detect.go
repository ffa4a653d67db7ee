package target

import (
	"os"
	"path/filepath"
)

// InstallStatus indicates the installation state of a target.
type InstallStatus string

const (
	// StatusInstalled means the target's configuration location exists.
	StatusInstalled InstallStatus = "installed"

	// StatusNotInstalled means the target's configuration location does not exist.
	StatusNotInstalled InstallStatus = "not installed"
)

// DetectionResult describes a detected target.
type DetectionResult struct {
	// Name is the target identifier.
	Name string

	// MCPConfig is the path of the target's MCP configuration file.
	MCPConfig string

	// Status is the detected installation status.
	Status InstallStatus
}

// Detect reports whether a target appears installed on this system.
// A target counts as installed when its MCP config file exists, or when
// the file's parent directory exists (a tool installed but not yet
// configured).
func Detect(t Target) DetectionResult {
	result := DetectionResult{
		Name:      t.Name(),
		MCPConfig: t.MCPConfigPath(),
		Status:    StatusNotInstalled,
	}
	if result.MCPConfig == "" {
		return result
	}

	if _, err := os.Stat(result.MCPConfig); err == nil {
		result.Status = StatusInstalled
		return result
	}
	if info, err := os.Stat(filepath.Dir(result.MCPConfig)); err == nil && info.IsDir() {
		result.Status = StatusInstalled
	}
	return result
}
