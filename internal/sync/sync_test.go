package sync_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/agentsync/internal/errors"
	syncer "github.com/thoreinstein/agentsync/internal/sync"
	"github.com/thoreinstein/agentsync/internal/target"
	"github.com/thoreinstein/agentsync/internal/target/claude"
	"github.com/thoreinstein/agentsync/internal/target/vscode"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeSource(t *testing.T, servers string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcp-servers.json")
	writeFile(t, path, `{"mcpServers":`+servers+`}`)
	return path
}

func readDoc(t *testing.T, path string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestSyncTarget_NewServerIntoEmptyTarget(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd","args":["--flag"]}}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")

	s := syncer.New(source)
	result, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)), syncer.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, result.Added)
	assert.Empty(t, result.BackupPath)

	doc := readDoc(t, dest)
	assert.JSONEq(t,
		`{"foo":{"command":"foo-cmd","args":["--flag"]}}`,
		string(doc["mcpServers"]))
}

func TestSyncTarget_ExistingEntryWins(t *testing.T) {
	source := writeSource(t, `{
		"foo":{"command":"new-cmd"},
		"bar":{"command":"bar-cmd"}
	}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")
	writeFile(t, dest, `{"mcpServers":{"foo":{"command":"old-cmd"}}}`)

	s := syncer.New(source)
	result, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)), syncer.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"bar"}, result.Added)

	doc := readDoc(t, dest)
	assert.JSONEq(t, `{
		"foo":{"command":"old-cmd"},
		"bar":{"command":"bar-cmd"}
	}`, string(doc["mcpServers"]))
}

func TestSyncTarget_PreservesUnrelatedFields(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"}}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")
	writeFile(t, dest, `{"theme":"dark","numStartups":42,"mcpServers":{}}`)

	s := syncer.New(source)
	_, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)), syncer.Options{})
	require.NoError(t, err)

	doc := readDoc(t, dest)
	assert.Equal(t, `"dark"`, string(doc["theme"]))
	assert.Equal(t, `42`, string(doc["numStartups"]))
}

func TestSyncTarget_DryRunWritesNothing(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"}}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")
	writeFile(t, dest, `{"mcpServers":{}}`)

	s := syncer.New(source)
	result, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)), syncer.Options{DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, result.Added)
	assert.NotEmpty(t, result.Preview)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `{"mcpServers":{}}`, string(data))
}

func TestSyncTarget_BacksUpExistingFile(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"}}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")
	original := `{"mcpServers":{"bar":{"command":"bar-cmd"}}}`
	writeFile(t, dest, original)

	s := syncer.New(source)
	result, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)), syncer.Options{})
	require.NoError(t, err)

	require.NotEmpty(t, result.BackupPath)
	data, err := os.ReadFile(result.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestSyncTarget_OnlyFilter(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"},"bar":{"command":"bar-cmd"}}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")

	s := syncer.New(source)
	result, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)),
		syncer.Options{Only: "foo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, result.Added)

	doc := readDoc(t, dest)
	assert.JSONEq(t, `{"foo":{"command":"foo-cmd"}}`, string(doc["mcpServers"]))
}

func TestSyncTarget_OnlyUnknownServer(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"},"bar":{"command":"bar-cmd"}}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")

	s := syncer.New(source)
	_, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)),
		syncer.Options{Only: "missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownServer))
	assert.Contains(t, err.Error(), "bar, foo")
}

func TestSyncTarget_SourceMissing(t *testing.T) {
	dest := filepath.Join(t.TempDir(), ".claude.json")
	writeFile(t, dest, `{"mcpServers":{}}`)

	s := syncer.New(filepath.Join(t.TempDir(), "absent.json"))
	_, err := s.SyncTarget(claude.New(claude.WithConfigPath(dest)), syncer.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSourceMissing))

	// Target untouched.
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `{"mcpServers":{}}`, string(data))
}

func TestSyncTarget_VSCodePipeline(t *testing.T) {
	source := writeSource(t, `{
		"foo":{"command":"foo-cmd"},
		"atlassian":{"url":"https://mcp.atlassian.com/v1/mcp"}
	}`)
	dest := filepath.Join(t.TempDir(), "mcp.json")

	s := syncer.New(source)
	result, err := s.SyncTarget(vscode.New(vscode.WithConfigPath(dest)), syncer.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"atlassian", "foo"}, result.Added)
	assert.True(t, result.SettingsChanged)

	doc := readDoc(t, dest)
	assert.JSONEq(t, `{
		"foo":{"type":"stdio","command":"foo-cmd"},
		"atlassian":{"type":"stdio","command":"npx","args":["mcp-remote","https://mcp.atlassian.com/v1/mcp"]}
	}`, string(doc["servers"]))
	assert.Equal(t, `true`, string(doc[vscode.AutostartKey]))
}

func TestSyncTarget_VSCodeAutostartAlreadyTrue(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"}}`)
	dest := filepath.Join(t.TempDir(), "mcp.json")
	writeFile(t, dest, `{"chat.mcp.autostart":true,"servers":{}}`)

	s := syncer.New(source)
	result, err := s.SyncTarget(vscode.New(vscode.WithConfigPath(dest)), syncer.Options{})
	require.NoError(t, err)
	assert.False(t, result.SettingsChanged)
}

func TestSync_ContinuesPastFailures(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"}}`)
	goodDest := filepath.Join(t.TempDir(), ".claude.json")
	badDest := filepath.Join(t.TempDir(), "mcp.json")
	// A directory where the config file should be makes the vscode target fail.
	require.NoError(t, os.MkdirAll(filepath.Join(badDest, "sub"), 0o755))

	s := syncer.New(source)
	results, err := s.Sync([]target.Target{
		claude.New(claude.WithConfigPath(goodDest)),
		vscode.New(vscode.WithConfigPath(badDest)),
	}, syncer.Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vscode")
	require.Len(t, results, 1)
	assert.Equal(t, "claude", results[0].Target)

	// The good target still got written.
	doc := readDoc(t, goodDest)
	assert.JSONEq(t, `{"foo":{"command":"foo-cmd"}}`, string(doc["mcpServers"]))
}

func TestDiff(t *testing.T) {
	source := writeSource(t, `{"foo":{"command":"foo-cmd"},"bar":{"command":"bar-cmd"}}`)
	dest := filepath.Join(t.TempDir(), ".claude.json")
	writeFile(t, dest, `{"mcpServers":{"foo":{"command":"old"}}}`)

	s := syncer.New(source)
	result, err := s.Diff(claude.New(claude.WithConfigPath(dest)))
	require.NoError(t, err)

	assert.Equal(t, []string{"bar"}, result.Added)
	assert.NotEmpty(t, result.Preview)
}
