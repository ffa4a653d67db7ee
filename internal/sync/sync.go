package sync

import (
	"log/slog"
	"strings"

	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/logging"
	"github.com/thoreinstein/agentsync/internal/mcp"
	"github.com/thoreinstein/agentsync/internal/target"
)

// Syncer distributes the source record store into target configurations.
type Syncer struct {
	sourcePath string
	logger     *slog.Logger
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

// New creates a Syncer reading the record store from sourcePath.
func New(sourcePath string, opts ...Option) *Syncer {
	s := &Syncer{
		sourcePath: sourcePath,
		logger:     logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Options controls a sync run.
type Options struct {
	// DryRun renders the merged result without writing anything.
	DryRun bool

	// Only restricts the sync to a single named server.
	Only string
}

// Result describes the outcome of syncing one target.
type Result struct {
	// Target is the target identifier.
	Target string

	// Path is the target configuration file.
	Path string

	// Added holds the server names the merge introduced, sorted.
	Added []string

	// SettingsChanged reports whether target-specific settings outside the
	// record store were modified.
	SettingsChanged bool

	// Preview is the rendered document for dry runs, nil otherwise.
	Preview []byte

	// BackupPath is where the previous file was backed up, empty when no
	// previous file existed or nothing was written.
	BackupPath string
}

// SyncTarget runs the merge pipeline for a single target.
//
// The source is read and converted before the destination is opened, so a
// bad source aborts with the target untouched. The destination file's
// unrelated fields and its existing server entries survive the write
// verbatim.
func (s *Syncer) SyncTarget(t target.Target, opts Options) (*Result, error) {
	source, err := LoadSourceStore(s.sourcePath)
	if err != nil {
		return nil, err
	}

	if opts.Only != "" {
		raw, ok := source[opts.Only]
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnknownServer,
				"%q (valid: %s)", opts.Only, strings.Join(source.Names(), ", "))
		}
		source = mcp.Store{opts.Only: raw}
	}

	converted, err := t.Convert(source)
	if err != nil {
		return nil, errors.Wrapf(err, "converting for target %s", t.Name())
	}

	path := t.MCPConfigPath()
	if path == "" {
		return nil, errors.Wrapf(errors.ErrTargetPrerequisite, "no config path for target %s", t.Name())
	}

	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	existing, err := doc.StoreField(t.ServersKey())
	if err != nil {
		return nil, err
	}

	result := &Result{
		Target: t.Name(),
		Path:   path,
		Added:  mcp.AddedKeys(converted, existing),
	}

	merged := mcp.Merge(existing, converted)
	if err := doc.SetStore(t.ServersKey(), merged); err != nil {
		return nil, err
	}

	result.SettingsChanged, err = t.PostMerge(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "applying settings for target %s", t.Name())
	}

	if opts.DryRun {
		result.Preview, err = doc.Render()
		if err != nil {
			return nil, err
		}
		s.logger.Info("dry run, nothing written",
			"target", t.Name(),
			"added", len(result.Added))
		return result, nil
	}

	result.BackupPath, err = WriteDocument(path, doc)
	if err != nil {
		return nil, err
	}

	s.logger.Info("synced MCP servers",
		"target", t.Name(),
		"path", path,
		"added", len(result.Added))
	return result, nil
}

// Sync runs SyncTarget for each target, continuing past per-target
// failures. It returns the results of the targets that succeeded and the
// joined errors of those that did not.
func (s *Syncer) Sync(targets []target.Target, opts Options) ([]*Result, error) {
	var (
		results []*Result
		errs    []error
	)
	for _, t := range targets {
		result, err := s.SyncTarget(t, opts)
		if err != nil {
			s.logger.Error("sync failed",
				"target", t.Name(),
				"error", err)
			errs = append(errs, errors.Wrapf(err, "target %s", t.Name()))
			continue
		}
		results = append(results, result)
	}
	return results, errors.Join(errs...)
}

// Diff reports what a sync of the target would change, without writing.
func (s *Syncer) Diff(t target.Target) (*Result, error) {
	return s.SyncTarget(t, Options{DryRun: true})
}
