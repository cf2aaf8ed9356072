package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveName(t *testing.T) {
	cases := []struct {
		locator string
		want    string
	}{
		{"git@host:org/alpha.git", "alpha"},
		{"git@host:alpha.git", "alpha"},
		{"https://host/org/beta.git", "beta"},
		{"https://host/org/beta", "beta"},
		{"https://host/org/beta/", "beta"},
		{"ssh://git@host:2222/org/gamma.git", "gamma"},
		{"../relative/delta.git", "delta"},
		{"https://host/org/repo.git/", "repo"},
	}
	for _, tc := range cases {
		t.Run(tc.locator, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveName(tc.locator))
		})
	}
}

func TestParse_SkipsBlanksAndComments(t *testing.T) {
	input := `
# primary repos
git@host:org/alpha.git

  # indented comment
https://host/org/beta.git
`
	entries, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Locator: "git@host:org/alpha.git", Name: "alpha"}, entries[0])
	assert.Equal(t, Entry{Locator: "https://host/org/beta.git", Name: "beta"}, entries[1])
}

func TestParse_PreservesInputOrder(t *testing.T) {
	input := "git@host:z.git\ngit@host:a.git\ngit@host:m.git\n"

	entries, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestParse_EmptyInput_NoEntries(t *testing.T) {
	entries, err := Parse(strings.NewReader("# nothing yet\n"))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_DuplicateDerivedName_Fails(t *testing.T) {
	input := "git@host:org/alpha.git\nhttps://other/fork/alpha.git\n"

	entries, err := Parse(strings.NewReader(input))

	assert.Nil(t, entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)

	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "alpha", dup.Name)
	assert.Equal(t, 2, dup.Line)
	assert.Equal(t, "git@host:org/alpha.git", dup.FirstLocator)
}

func TestParse_EmptyDerivedName_Fails(t *testing.T) {
	entries, err := Parse(strings.NewReader("https://host/org/.git\n"))

	assert.Nil(t, entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyName)

	var inv *InvalidEntryError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, 1, inv.Line)
}
