package gitrepo

import (
	"os"
	"path/filepath"

	gitcfg "github.com/go-git/go-git/v5/config"
)

// ModulesFile is the registry-metadata file name at the repository root.
const ModulesFile = ".gitmodules"

// Modules is the submodule registry decoded from .gitmodules. A record
// existing for a path means the path is configured, independent of what
// the working tree holds.
type Modules struct {
	inner *gitcfg.Modules
}

// Lookup returns the locator recorded for the given checkout path.
func (m *Modules) Lookup(path string) (string, bool) {
	for _, sub := range m.inner.Submodules {
		if sub.Path == path {
			return sub.URL, true
		}
	}
	return "", false
}

// Upsert records a submodule at path tracking locator, replacing any
// record already held under the same name.
func (m *Modules) Upsert(path, locator string) {
	m.inner.Submodules[path] = &gitcfg.Submodule{
		Name: path,
		Path: path,
		URL:  locator,
	}
}

// ReadModules decodes the registry. A missing .gitmodules is an empty
// registry, not an error: it simply means nothing is configured yet.
func (r *Repository) ReadModules() (*Modules, error) {
	path := filepath.Join(r.root, ModulesFile)

	mods := gitcfg.NewModules()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Modules{inner: mods}, nil
		}
		return nil, &ModulesError{Path: path, Cause: err}
	}
	if err := mods.Unmarshal(data); err != nil {
		return nil, &ModulesError{Path: path, Cause: err}
	}
	return &Modules{inner: mods}, nil
}

// Registered reports whether the registry holds a record whose path equals
// name. The working tree is not consulted.
func (r *Repository) Registered(name string) (bool, error) {
	mods, err := r.ReadModules()
	if err != nil {
		return false, err
	}
	_, ok := mods.Lookup(name)
	return ok, nil
}

// WriteModules serializes the registry back through go-git's own codec, so
// the file stays in the exact format git tooling expects.
func (r *Repository) WriteModules(m *Modules) error {
	path := filepath.Join(r.root, ModulesFile)

	data, err := m.inner.Marshal()
	if err != nil {
		return &ModulesError{Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &ModulesError{Path: path, Cause: err}
	}
	return nil
}
