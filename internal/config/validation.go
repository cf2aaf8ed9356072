package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Sync.ManifestName) == "" {
		errs = append(errs, "sync.manifest_name must not be empty")
	}
	if filepath.Base(c.Sync.ManifestName) != c.Sync.ManifestName {
		errs = append(errs, "sync.manifest_name must be a bare file name, not a path")
	}
	if strings.TrimSpace(c.Sync.RemoteName) == "" {
		errs = append(errs, "sync.remote_name must not be empty")
	}

	for _, p := range c.Sync.ExtraExempt {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, "sync.extra_exempt entries must not be empty")
			continue
		}
		// Exemptions apply to the repository root's ignore file; anything
		// escaping the root can never match.
		if p != filepath.Clean(p) || strings.HasPrefix(p, "..") || filepath.IsAbs(p) {
			errs = append(errs, fmt.Sprintf("sync.extra_exempt entry %q must be a clean path inside the repository", p))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
