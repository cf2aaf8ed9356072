// Package syncer runs the reconciliation pipeline: parse the manifest,
// bring the ignore policy and the submodule registry in line with it, and
// report one summary for the whole run. One bad entry never blocks the
// rest; fatal conditions are only an unusable repository or manifest.
package syncer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"subsync/internal/config"
	"subsync/internal/gitrepo"
	"subsync/internal/ignorefile"
	"subsync/internal/manifest"
)

// IgnoreFile is the ignore-policy file name at the repository root.
const IgnoreFile = ".gitignore"

// Syncer drives one reconciliation run. All collaborators are injected.
type Syncer struct {
	git     GitService
	fs      FileSystem
	console Reporter
	log     zerolog.Logger
	cfg     config.SyncConfig
	dryRun  bool
}

// New creates a Syncer with the given collaborators.
func New(git GitService, fs FileSystem, console Reporter, log zerolog.Logger, cfg config.SyncConfig, dryRun bool) *Syncer {
	return &Syncer{
		git:     git,
		fs:      fs,
		console: console,
		log:     log,
		cfg:     cfg,
		dryRun:  dryRun,
	}
}

// Run performs a single pass over the manifest, in input order. Entries
// are reconciled independently; the returned Result feeds the summary and
// the process exit code. A non-nil error means a fatal condition and no
// further work was attempted.
func (s *Syncer) Run(ctx context.Context) (Result, error) {
	root := s.git.Root()

	manifestPath := filepath.Join(root, s.cfg.ManifestName)
	data, err := s.fs.ReadFile(manifestPath)
	if err != nil {
		return Result{}, &ManifestError{Path: manifestPath, Cause: err}
	}
	entries, err := manifest.Parse(bytes.NewReader(data))
	if err != nil {
		return Result{}, &ManifestError{Path: manifestPath, Cause: err}
	}

	ign, err := s.loadIgnoreFile(root)
	if err != nil {
		return Result{}, err
	}

	s.console.Infof("syncing %d entries from %s", len(entries), s.cfg.ManifestName)

	var res Result
	for _, entry := range entries {
		s.log.Debug().Str("name", entry.Name).Str("locator", entry.Locator).Msg("reconciling entry")

		ign.Exempt(entry.Name)
		if err := s.persistIgnoreFile(root, ign, &res); err != nil {
			return res, err
		}

		s.reconcileEntry(ctx, entry, &res)
	}

	s.console.Summaryf("%s", Summary(res))
	return res, nil
}

// reconcileEntry classifies one entry against the registry and the working
// tree, then applies the matching recovery action. Failures are recoverable:
// they flip the error flag and the run moves on.
func (s *Syncer) reconcileEntry(ctx context.Context, entry manifest.Entry, res *Result) {
	registered, err := s.git.Registered(entry.Name)
	if err != nil {
		s.warnf(res, "%s: cannot query registry: %v", entry.Name, err)
		return
	}

	switch {
	case !registered:
		s.register(ctx, entry, res, "registered")
	case s.git.ProbeCheckout(entry.Name) == gitrepo.CheckoutValid:
		s.update(ctx, entry, res)
	default:
		// Registered but the checkout is missing or broken.
		s.register(ctx, entry, res, "re-registered")
	}
}

func (s *Syncer) register(ctx context.Context, entry manifest.Entry, res *Result, verb string) {
	if s.dryRun {
		s.console.Infof("%s: would be %s from %s", entry.Name, verb, entry.Locator)
		res.Changed = true
		return
	}

	if s.git.ProbeCheckout(entry.Name) != gitrepo.CheckoutAbsent {
		if err := s.git.RemoveCheckout(entry.Name); err != nil {
			s.warnf(res, "%s: cannot clear stale checkout: %v", entry.Name, err)
			return
		}
	}

	if err := s.git.Register(ctx, entry.Name, entry.Locator); err != nil {
		s.warnf(res, "%s: %v", entry.Name, err)
		return
	}

	if err := s.git.Stage(gitrepo.ModulesFile, entry.Name); err != nil {
		s.warnf(res, "%s: %v", entry.Name, err)
		return
	}

	res.Changed = true
	s.console.Successf("%s %s", verb, entry.Name)
}

func (s *Syncer) update(ctx context.Context, entry manifest.Entry, res *Result) {
	if s.dryRun {
		s.console.Infof("%s: would fast-forward", entry.Name)
		return
	}

	moved, err := s.git.Update(ctx, entry.Name)
	if err != nil {
		s.warnf(res, "%s: %v", entry.Name, err)
		return
	}
	if !moved {
		s.console.Infof("%s: already up to date", entry.Name)
		return
	}

	if err := s.git.Stage(entry.Name); err != nil {
		s.warnf(res, "%s: %v", entry.Name, err)
		return
	}

	res.Changed = true
	s.console.Successf("updated %s", entry.Name)
}

// loadIgnoreFile parses the existing ignore policy, or produces the
// default-deny-all baseline when none exists yet.
func (s *Syncer) loadIgnoreFile(root string) (*ignorefile.File, error) {
	path := filepath.Join(root, IgnoreFile)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug().Str("path", path).Msg("no ignore file, starting from baseline")
			return ignorefile.Baseline(s.cfg.ManifestName, s.cfg.ExtraExempt), nil
		}
		return nil, &IgnoreFileError{Path: path, Cause: err}
	}
	return ignorefile.Parse(data), nil
}

// persistIgnoreFile writes the policy if it is dirty and stages it as part
// of the pending change set. In dry-run mode the change is only counted.
func (s *Syncer) persistIgnoreFile(root string, ign *ignorefile.File, res *Result) error {
	if !ign.Changed() {
		return nil
	}
	if s.dryRun {
		res.Changed = true
		ign.MarkPersisted()
		return nil
	}

	path := filepath.Join(root, IgnoreFile)
	if err := s.fs.WriteFile(path, ign.Render(), 0o644); err != nil {
		return &IgnoreFileError{Path: path, Cause: err}
	}
	ign.MarkPersisted()

	if err := s.git.Stage(IgnoreFile); err != nil {
		s.warnf(res, "%v", err)
	}
	res.Changed = true
	return nil
}

func (s *Syncer) warnf(res *Result, format string, args ...any) {
	res.Errored = true
	s.log.Warn().Msgf(format, args...)
	s.console.Warnf(format, args...)
}
