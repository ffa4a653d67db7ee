package skill

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/logging"
	"github.com/thoreinstein/agentsync/internal/paths"
)

// Status describes what sync did with one skill.
type Status string

const (
	// StatusCopied means the skill was absent and has been copied.
	StatusCopied Status = "copied"

	// StatusSkipped means the skill already exists and was left alone.
	StatusSkipped Status = "skipped"

	// StatusReplaced means an existing skill was overwritten under --force.
	StatusReplaced Status = "replaced"
)

// Result describes the outcome of syncing one skill.
type Result struct {
	// Skill is the skill name.
	Skill string

	// Status is what happened to it.
	Status Status

	// Dest is the directory the skill lives in at the destination.
	Dest string
}

// Syncer copies skills from the source repository into a destination
// skill directory.
type Syncer struct {
	sourceDir string
	logger    *slog.Logger
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets the logger used for sync progress.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Syncer reading skills from sourceDir.
func New(sourceDir string, opts ...Option) *Syncer {
	s := &Syncer{
		sourceDir: sourceDir,
		logger:    logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Options controls a skill sync run.
type Options struct {
	// Only restricts the sync to a single named skill.
	Only string

	// Force replaces skills that already exist at the destination.
	Force bool
}

// Sync copies skills into destDir.
//
// An existing skill directory at the destination is skipped unless Force
// is set, in which case it is removed and replaced with the source copy.
// Only limits the run to one skill; naming a skill the source does not
// have is an error listing the valid names.
func (s *Syncer) Sync(destDir string, opts Options) ([]Result, error) {
	if destDir == "" {
		return nil, errors.Wrap(errors.ErrTargetPrerequisite, "no skill directory for target")
	}

	skills, err := Scan(s.sourceDir)
	if err != nil {
		return nil, err
	}

	if opts.Only != "" {
		found := false
		for _, sk := range skills {
			if sk.Name == opts.Only {
				skills = []Skill{sk}
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Wrapf(errors.ErrUnknownSkill,
				"%q (valid: %s)", opts.Only, strings.Join(Names(skills), ", "))
		}
	}

	if err := paths.EnsureDir(destDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating skill directory %s", destDir)
	}

	results := make([]Result, 0, len(skills))
	for _, sk := range skills {
		dest := filepath.Join(destDir, sk.Name)

		status := StatusCopied
		if _, err := os.Stat(dest); err == nil {
			if !opts.Force {
				s.logger.Debug("skill exists, skipping", "skill", sk.Name)
				results = append(results, Result{Skill: sk.Name, Status: StatusSkipped, Dest: dest})
				continue
			}
			if err := os.RemoveAll(dest); err != nil {
				return results, errors.Wrapf(err, "removing existing skill %s", sk.Name)
			}
			status = StatusReplaced
		}

		if err := paths.EnsureDir(dest, 0o755); err != nil {
			return results, errors.Wrapf(err, "creating directory for skill %s", sk.Name)
		}
		if err := copyDir(sk.Dir, dest); err != nil {
			return results, errors.Wrapf(err, "copying skill %s", sk.Name)
		}

		s.logger.Info("synced skill", "skill", sk.Name, "status", string(status))
		results = append(results, Result{Skill: sk.Name, Status: status, Dest: dest})
	}

	return results, nil
}

// copyDir recursively copies a directory tree. dst must already exist.
func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				return errors.Wrapf(err, "creating directory %s", dstPath)
			}
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

// copyFile copies a single file, preserving the source mode.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "copying %s", src)
	}
	return nil
}
