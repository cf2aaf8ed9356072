package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults_AreValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_EmptyManifestName_Fails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync.ManifestName = "   "

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync.manifest_name")
}

func TestValidate_ManifestNameWithPath_Fails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync.ManifestName = "lists/submodules.txt"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bare file name")
}

func TestValidate_EmptyRemoteName_Fails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync.RemoteName = ""

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync.remote_name")
}

func TestValidate_ExtraExempt_RejectsEscapingPaths(t *testing.T) {
	cases := []struct {
		name  string
		entry string
	}{
		{"parent escape", "../secrets"},
		{"absolute", "/etc/passwd"},
		{"unclean", "docs/../docs"},
		{"blank", "  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Sync.ExtraExempt = []string{tc.entry}
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ExtraExempt_AcceptsCleanRelativePaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sync.ExtraExempt = []string{"docs", "scripts/deploy.sh"}
	assert.NoError(t, cfg.Validate())
}
