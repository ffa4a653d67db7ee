package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/logging"
	"github.com/thoreinstein/agentsync/internal/skill"
)

var (
	skillSyncForce bool
	skillSyncDest  string
)

func init() {
	skillSyncCmd.Flags().BoolVar(&skillSyncForce, "force", false,
		"replace skills that already exist at the destination")
	skillSyncCmd.Flags().StringVar(&skillSyncDest, "dest", "",
		"destination skill directory (required for targets without one)")
	skillCmd.AddCommand(skillSyncCmd)
}

var skillSyncCmd = &cobra.Command{
	Use:   "sync [skill]",
	Short: "Copy skills from the source repository into targets",
	Long: `Copy skill directories from the source repository into each target's
skill directory.

A skill already present at the destination is skipped so local edits
survive a resync. Use --force to replace it with the source version.
Pass a skill name to sync just that one skill.

Targets without a native skill directory (VS Code) need an explicit
destination via --dest or a skill_dir override in the config file.`,
	Example: `  # Sync every skill to Claude Code
  agentsync skill sync --target claude

  # Sync one skill, replacing local changes
  agentsync skill sync review --force

  # Sync to VS Code with an explicit destination
  agentsync skill sync --target vscode --dest ~/vscode-skills`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkillSync,
}

func runSkillSync(cmd *cobra.Command, args []string) error {
	return runSkillSyncWithWriter(cmd, args, os.Stdout)
}

func runSkillSyncWithWriter(cmd *cobra.Command, args []string, w io.Writer) error {
	targets, err := resolveTargets()
	if err != nil {
		return err
	}

	opts := skill.Options{Force: skillSyncForce}
	if len(args) > 0 {
		opts.Only = args[0]
	}

	s := skill.New(cfg.SkillsPath(),
		skill.WithLogger(logging.FromContext(cmd.Context())))

	var errs []error
	for _, t := range targets {
		dest := skillSyncDest
		if dest == "" {
			dest = t.SkillDir()
		}
		if dest == "" {
			errs = append(errs, errors.Wrapf(errors.ErrTargetPrerequisite,
				"target %s has no skill directory, pass --dest", t.Name()))
			continue
		}

		results, err := s.Sync(dest, opts)
		if err != nil {
			if errors.Is(err, errors.ErrSourceMissing) || errors.Is(err, errors.ErrUnknownSkill) {
				return errors.NewUserError(err, "run 'agentsync skill list' to see source skills")
			}
			errs = append(errs, errors.Wrapf(err, "target %s", t.Name()))
			continue
		}

		for _, r := range results {
			switch r.Status {
			case skill.StatusSkipped:
				fmt.Fprintf(w, "%s%s: %s exists, skipped (use --force to replace)%s\n",
					colorYellow, t.Name(), r.Skill, colorReset)
			case skill.StatusReplaced:
				fmt.Fprintf(w, "%s✓ %s: replaced %s%s\n",
					colorGreen, t.Name(), r.Skill, colorReset)
			default:
				fmt.Fprintf(w, "%s✓ %s: copied %s%s\n",
					colorGreen, t.Name(), r.Skill, colorReset)
			}
		}
	}

	if len(errs) > 0 {
		return errors.NewSystemError(errors.Join(errs...), "one or more targets failed")
	}
	return nil
}
