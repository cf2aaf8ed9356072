package syncer

import (
	"context"
	"os"

	"subsync/internal/gitrepo"
)

// GitService is the version-control capability set the pipeline consumes.
// *gitrepo.Repository is the production implementation; tests substitute
// their own.
type GitService interface {
	// Root returns the absolute working-tree root of the parent repository.
	Root() string
	// Registered reports whether a registry record exists for the path.
	Registered(name string) (bool, error)
	// ProbeCheckout classifies what occupies the checkout path.
	ProbeCheckout(name string) gitrepo.CheckoutState
	// RemoveCheckout recursively deletes the checkout path.
	RemoveCheckout(name string) error
	// Register clones locator into a fresh checkout and records it.
	Register(ctx context.Context, name, locator string) error
	// Update fast-forwards an existing checkout, reporting whether it moved.
	Update(ctx context.Context, name string) (bool, error)
	// Stage adds root-relative paths to the parent repository's index.
	Stage(paths ...string) error
}

// FileSystem abstracts the file operations used to read the manifest and
// persist the ignore policy.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// Reporter is the line-oriented console the pipeline narrates progress to.
type Reporter interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Summaryf(format string, args ...any)
}
