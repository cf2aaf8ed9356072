package manifest

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrEmptyName     = errors.New("locator yields an empty directory name")
	ErrDuplicateName = errors.New("duplicate derived directory name")
)

// InvalidEntryError is returned when a manifest line cannot be turned into
// a usable entry. Line is 1-based.
type InvalidEntryError struct {
	Line    int
	Locator string
	Cause   error
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("manifest line %d: %q: %v", e.Line, e.Locator, e.Cause)
}

func (e *InvalidEntryError) Unwrap() error {
	return e.Cause
}

// DuplicateNameError is returned when two locators derive the same
// directory name. Registering both would silently overwrite one record.
type DuplicateNameError struct {
	Name         string
	Locator      string
	FirstLocator string
	Line         int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("manifest line %d: %q derives %q, already taken by %q",
		e.Line, e.Locator, e.Name, e.FirstLocator)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}
