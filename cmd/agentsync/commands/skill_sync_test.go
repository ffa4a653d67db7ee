package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceSkill(t *testing.T, name string) {
	t.Helper()
	dir := filepath.Join(cfg.SkillsPath(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "---\nname: " + name + "\ndescription: A " + name + " skill\n---\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
}

func TestRunSkillSync_CopiesToTarget(t *testing.T) {
	setupTestConfig(t, `{}`)
	writeSourceSkill(t, "review")

	var out bytes.Buffer
	require.NoError(t, runSkillSyncWithWriter(&cobra.Command{}, nil, &out))

	assert.Contains(t, out.String(), "copied review")

	skillDir := cfg.Targets["claude"].SkillDir
	_, err := os.Stat(filepath.Join(skillDir, "review", "SKILL.md"))
	assert.NoError(t, err)
}

func TestRunSkillSync_UnknownSkill(t *testing.T) {
	setupTestConfig(t, `{}`)
	writeSourceSkill(t, "review")

	var out bytes.Buffer
	err := runSkillSyncWithWriter(&cobra.Command{}, []string{"missing"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review")
}

func TestRunSkillList(t *testing.T) {
	setupTestConfig(t, `{}`)
	writeSourceSkill(t, "review")

	var out bytes.Buffer
	require.NoError(t, runSkillListWithWriter(&out))

	assert.Contains(t, out.String(), "review")
	assert.Contains(t, out.String(), "A review skill")
}
