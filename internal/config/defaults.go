package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Sync SyncConfig `json:"sync"`
}

type SyncConfig struct {
	// ManifestName is the list of repositories to keep in sync,
	// relative to the repository root.
	ManifestName string `json:"manifest_name"` // Default: "submodules.txt"

	// RemoteName is the remote used when fast-forwarding registered checkouts.
	RemoteName string `json:"remote_name"` // Default: "origin"

	// ExtraExempt lists additional paths exempted from the deny-all
	// baseline, on top of the ignore file itself, the manifest and the
	// submodule registry file.
	ExtraExempt []string `json:"extra_exempt"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Sync: SyncConfig{
			ManifestName: "submodules.txt",
			RemoteName:   "origin",
			ExtraExempt:  nil,
		},
	}
}
