package syncer

import "fmt"

// ManifestError is fatal: without a readable manifest there is no source
// of truth to reconcile against.
type ManifestError struct {
	Path  string
	Cause error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("failed to read manifest %s: %v", e.Path, e.Cause)
}

func (e *ManifestError) Unwrap() error { return e.Cause }

// IgnoreFileError is fatal: the ignore policy could not be read or
// written, so reconciliation cannot make progress safely.
type IgnoreFileError struct {
	Path  string
	Cause error
}

func (e *IgnoreFileError) Error() string {
	return fmt.Sprintf("failed to access ignore file %s: %v", e.Path, e.Cause)
}

func (e *IgnoreFileError) Unwrap() error { return e.Cause }
