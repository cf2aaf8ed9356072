// Package ignorefile maintains the parent repository's ignore policy as an
// ordered line list. The file is parsed into a value object, reconciled in
// memory, and serialized back; callers persist it in one explicit step only
// when it actually changed.
package ignorefile

import "strings"

// File is the ignore policy as an ordered sequence of pattern lines.
type File struct {
	lines   []string
	changed bool
}

// Parse builds a File from the on-disk bytes. Handles both \n and \r\n
// line endings; a trailing newline does not produce an empty last line.
func Parse(data []byte) *File {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return &File{}
	}
	return &File{lines: strings.Split(content, "\n")}
}

// Baseline returns the default-deny-all policy written on first run: ignore
// everything, exempting the ignore file itself, the manifest, the submodule
// registry file, and any configured extra paths. The returned File is
// marked changed so it gets persisted.
func Baseline(manifestName string, extraExempt []string) *File {
	lines := []string{
		"*",
		"!.gitignore",
		"!" + manifestName,
		"!.gitmodules",
	}
	for _, p := range extraExempt {
		lines = append(lines, "!"+p)
	}
	return &File{lines: lines, changed: true}
}

// Exempt ensures exactly one "!<name>/" rule exists for name. When the
// file is already canonical for name (one un-ignore rule, no stale
// "<name>/" lines) nothing happens, keeping re-runs write-free. Otherwise
// every line of either polarity is removed and the canonical rule is
// appended at the end. Names are matched and written literally; glob
// metacharacters are not escaped.
func (f *File) Exempt(name string) {
	ignore := name + "/"
	unignore := "!" + name + "/"

	stale, rules := 0, 0
	for _, line := range f.lines {
		switch line {
		case ignore:
			stale++
		case unignore:
			rules++
		}
	}
	if stale == 0 && rules == 1 {
		return
	}

	kept := make([]string, 0, len(f.lines)+1)
	for _, line := range f.lines {
		if line == ignore || line == unignore {
			continue
		}
		kept = append(kept, line)
	}
	f.lines = append(kept, unignore)
	f.changed = true
}

// Changed reports whether the file is dirty, i.e. differs from what was
// parsed or last persisted.
func (f *File) Changed() bool {
	return f.changed
}

// MarkPersisted clears the dirty flag after the caller wrote Render's
// output to disk.
func (f *File) MarkPersisted() {
	f.changed = false
}

// Lines returns a copy of the current pattern lines.
func (f *File) Lines() []string {
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

// Render serializes the file for persistence, newline-terminated.
func (f *File) Render() []byte {
	if len(f.lines) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(f.lines, "\n") + "\n")
}
