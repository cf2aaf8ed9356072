// Package gitrepo wraps every version-control operation the sync pipeline
// needs behind one collaborator: locating the parent repository, probing
// and registering nested checkouts, fast-forwarding them, and staging
// changed paths. All of it goes through go-git; no git binary is invoked.
package gitrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

// CheckoutState classifies what occupies a checkout path in the working tree.
type CheckoutState int

const (
	// CheckoutAbsent means nothing exists at the path.
	CheckoutAbsent CheckoutState = iota
	// CheckoutPlain means a file or directory exists but is not a usable
	// repository (including a corrupt or headless one).
	CheckoutPlain
	// CheckoutValid means a nested repository with a resolvable HEAD.
	CheckoutValid
)

// Repository is the parent repository all sync operations run against.
type Repository struct {
	repo   *git.Repository
	root   string
	remote string
}

// Open locates the repository enclosing startDir, walking upwards the way
// git itself does. Returns ErrNoRepository if no repository encloses it.
func Open(startDir, remote string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(startDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNoRepository
		}
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to reconcile.
		return nil, ErrNoRepository
	}

	return &Repository{
		repo:   repo,
		root:   wt.Filesystem.Root(),
		remote: remote,
	}, nil
}

// Root returns the absolute path of the repository's working tree root.
func (r *Repository) Root() string {
	return r.root
}

// ProbeCheckout inspects the working tree at name.
func (r *Repository) ProbeCheckout(name string) CheckoutState {
	dir := filepath.Join(r.root, name)

	info, err := os.Stat(dir)
	if err != nil {
		return CheckoutAbsent
	}
	if !info.IsDir() {
		return CheckoutPlain
	}

	nested, err := git.PlainOpen(dir)
	if err != nil {
		return CheckoutPlain
	}
	if _, err := nested.Head(); err != nil {
		return CheckoutPlain
	}
	return CheckoutValid
}

// RemoveCheckout recursively deletes whatever occupies the checkout path.
// Destructive and irreversible; callers only invoke it on paths that are
// about to be re-registered.
func (r *Repository) RemoveCheckout(name string) error {
	return os.RemoveAll(filepath.Join(r.root, name))
}

// Register clones locator into a fresh checkout at name and upserts its
// registry record. A failed clone discards the partial checkout before
// returning; the registry is only touched after the clone succeeded.
func (r *Repository) Register(ctx context.Context, name, locator string) error {
	dir := filepath.Join(r.root, name)

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:        locator,
		RemoteName: r.remote,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return &RegisterError{Name: name, Locator: locator, Cause: err}
	}

	mods, err := r.ReadModules()
	if err != nil {
		return err
	}
	mods.Upsert(name, locator)
	if err := r.WriteModules(mods); err != nil {
		return err
	}
	return nil
}

// Update fast-forwards the checkout at name to the latest revision of its
// tracked branch on the configured remote. Reports whether anything moved;
// an already up-to-date checkout is not a change. On error the checkout is
// left as it was.
func (r *Repository) Update(ctx context.Context, name string) (bool, error) {
	dir := filepath.Join(r.root, name)

	nested, err := git.PlainOpen(dir)
	if err != nil {
		return false, &UpdateError{Name: name, Cause: err}
	}
	wt, err := nested.Worktree()
	if err != nil {
		return false, &UpdateError{Name: name, Cause: err}
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: r.remote})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return false, nil
	}
	if err != nil {
		return false, &UpdateError{Name: name, Cause: err}
	}
	return true, nil
}

// Stage adds the given root-relative paths to the parent repository's
// index so the reconciled state lands in the next commit as one change.
func (r *Repository) Stage(paths ...string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return &StageError{Path: r.root, Cause: err}
	}
	for _, p := range paths {
		if _, err := wt.Add(p); err != nil {
			return &StageError{Path: p, Cause: err}
		}
	}
	return nil
}
