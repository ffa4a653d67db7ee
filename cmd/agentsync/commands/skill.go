package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(skillCmd)
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Sync skills to target tools",
	Long: `Sync skills from the source repository into each target tool's
skill directory.

A skill is a directory containing a SKILL.md file. Skills are copied
wholesale; a skill already present at the destination is skipped so
local edits survive, unless --force is given.`,
	Example: `  # Sync all skills to Claude Code
  agentsync skill sync --target claude

  # List skills in the source repository
  agentsync skill list

  # Replace a locally modified skill
  agentsync skill sync review --force

  See Also:
    agentsync skill sync - Copy skills into targets
    agentsync skill list - List source skills`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
