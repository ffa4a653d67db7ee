package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/skill"
)

func init() {
	skillCmd.AddCommand(skillListCmd)
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in the source repository",
	Long: `List the skills available in the source repository with their
descriptions from SKILL.md frontmatter.`,
	Example: `  # List source skills
  agentsync skill list`,
	RunE: runSkillList,
}

func runSkillList(_ *cobra.Command, _ []string) error {
	return runSkillListWithWriter(os.Stdout)
}

func runSkillListWithWriter(w io.Writer) error {
	skills, err := skill.Scan(cfg.SkillsPath())
	if err != nil {
		if errors.Is(err, errors.ErrSourceMissing) {
			return errors.NewUserError(err,
				"check the source directory (--source or config.yaml)")
		}
		return err
	}

	if len(skills) == 0 {
		fmt.Fprintf(w, "%sNo skills in %s%s\n", colorGray, cfg.SkillsPath(), colorReset)
		return nil
	}

	for _, s := range skills {
		fmt.Fprintf(w, "%s%s%s", colorGreen, s.Name, colorReset)
		if s.Description != "" {
			fmt.Fprintf(w, " - %s", truncate(s.Description, 60))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
