package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Sync MCP server configurations",
	Long: `Sync Model Context Protocol (MCP) server definitions from the source
repository into each target tool's configuration.

The source file defines servers once; sync converts each entry into the
target's schema and merges it into the target's configuration file.
Entries already present in a target are never overwritten.`,
	Example: `  # Sync servers to all configured targets
  agentsync mcp sync

  # Preview what a sync would add, without writing
  agentsync mcp diff

  # Sync only VS Code
  agentsync mcp sync --target vscode

  See Also:
    agentsync mcp sync - Merge source servers into targets
    agentsync mcp diff - Show what a sync would add`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
