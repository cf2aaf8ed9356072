// Package manifest parses the newline-delimited list of repositories that
// drives a sync run and derives the local checkout name for each locator.
package manifest

import (
	"bufio"
	"io"
	"strings"
)

// Entry is one repository to keep in sync. Immutable once parsed.
type Entry struct {
	// Locator is the remote URL exactly as written in the manifest.
	Locator string
	// Name is the local directory name derived from the locator.
	Name string
}

// DeriveName computes the local directory name for a locator: the final
// path segment with any trailing ".git" suffix stripped. Both URL-style
// (https://host/org/repo.git) and scp-style (git@host:org/repo.git)
// locators are handled.
//
// Names are used verbatim in ignore rules; glob metacharacters are not
// escaped and propagate literally.
func DeriveName(locator string) string {
	name := strings.TrimRight(locator, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	// scp-style locators with no slash after the colon (git@host:repo.git)
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	return strings.TrimSpace(name)
}

// Parse reads the manifest from r and returns its entries in input order.
// Blank lines and lines whose first non-whitespace character is '#' are
// skipped. Two locators deriving the same name, or a locator deriving an
// empty name, fail the whole parse: proceeding would let one entry
// clobber another's registry record.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	seen := map[string]string{} // derived name -> first locator

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name := DeriveName(line)
		if name == "" {
			return nil, &InvalidEntryError{Line: lineNo, Locator: line, Cause: ErrEmptyName}
		}
		if first, ok := seen[name]; ok {
			return nil, &DuplicateNameError{Name: name, Locator: line, FirstLocator: first, Line: lineNo}
		}
		seen[name] = line

		entries = append(entries, Entry{Locator: line, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
