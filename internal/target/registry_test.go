package target_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/paths"
	"github.com/thoreinstein/agentsync/internal/target"
	"github.com/thoreinstein/agentsync/internal/target/claude"
	"github.com/thoreinstein/agentsync/internal/target/vscode"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := target.NewRegistry()
	require.NoError(t, r.Register(claude.New()))
	require.NoError(t, r.Register(vscode.New()))

	got, err := r.Get(paths.TargetClaude)
	require.NoError(t, err)
	assert.Equal(t, paths.TargetClaude, got.Name())

	got, err = r.Get(paths.TargetVSCode)
	require.NoError(t, err)
	assert.Equal(t, paths.TargetVSCode, got.Name())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := target.NewRegistry()
	require.NoError(t, r.Register(claude.New()))

	_, err := r.Get("cursor")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownTarget))
	assert.Contains(t, err.Error(), "cursor")
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := target.NewRegistry()
	require.NoError(t, r.Register(claude.New()))

	err := r.Register(claude.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, target.ErrTargetAlreadyRegistered))
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	r := target.NewRegistry()

	err := r.Register(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, target.ErrInvalidTargetName))
}

func TestRegistry_AllDeterministicOrder(t *testing.T) {
	r := target.NewRegistry()
	// Register in reverse of the canonical order.
	require.NoError(t, r.Register(vscode.New()))
	require.NoError(t, r.Register(claude.New()))

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, paths.TargetClaude, all[0].Name())
	assert.Equal(t, paths.TargetVSCode, all[1].Name())
}

func TestRegistry_Installed(t *testing.T) {
	tmp := t.TempDir()

	installed := claude.New(claude.WithConfigPath(filepath.Join(tmp, ".claude.json")))
	missing := vscode.New(vscode.WithConfigPath(filepath.Join(tmp, "no", "such", "mcp.json")))

	r := target.NewRegistry()
	require.NoError(t, r.Register(installed))
	require.NoError(t, r.Register(missing))

	got := r.Installed()
	require.Len(t, got, 1)
	assert.Equal(t, paths.TargetClaude, got[0].Name())
}

func TestDetect(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name string
		path string
		want target.InstallStatus
	}{
		{
			name: "parent dir exists",
			path: filepath.Join(tmp, ".claude.json"),
			want: target.StatusInstalled,
		},
		{
			name: "missing parent dir",
			path: filepath.Join(tmp, "no", "such", "mcp.json"),
			want: target.StatusNotInstalled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := target.Detect(claude.New(claude.WithConfigPath(tt.path)))
			assert.Equal(t, tt.want, result.Status)
			assert.Equal(t, tt.path, result.MCPConfig)
		})
	}
}
