package gitrepo

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	// ErrNoRepository is returned when no enclosing git repository exists.
	ErrNoRepository = errors.New("not inside a git repository")
)

// ModulesError is returned when the submodule registry file cannot be
// read, decoded, or written.
type ModulesError struct {
	Path  string
	Cause error
}

func (e *ModulesError) Error() string {
	return fmt.Sprintf("failed to access submodule registry at %s: %v", e.Path, e.Cause)
}

func (e *ModulesError) Unwrap() error { return e.Cause }

// RegisterError is returned when registering a new checkout fails. Any
// partial checkout directory has already been discarded.
type RegisterError struct {
	Name    string
	Locator string
	Cause   error
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("failed to register %s from %s: %v", e.Name, e.Locator, e.Cause)
}

func (e *RegisterError) Unwrap() error { return e.Cause }

// UpdateError is returned when fast-forwarding a registered checkout
// fails. The checkout is left untouched.
type UpdateError struct {
	Name  string
	Cause error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("failed to update %s: %v", e.Name, e.Cause)
}

func (e *UpdateError) Unwrap() error { return e.Cause }

// StageError is returned when a path cannot be staged in the parent
// repository's index.
type StageError struct {
	Path  string
	Cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("failed to stage %s: %v", e.Path, e.Cause)
}

func (e *StageError) Unwrap() error { return e.Cause }
