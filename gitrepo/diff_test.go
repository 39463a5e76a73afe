package gitrepo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nameStatus builds 'git diff --name-status -z' output from its fields.
func nameStatus(fields ...string) string {
	return strings.Join(fields, "\x00") + "\x00"
}

func TestParseNameStatus(t *testing.T) {
	out := nameStatus(
		"A", "frontend/new.js",
		"D", "frontend/old.js",
		"M", "README.md",
		"T", "scripts/run",
		"R100", "docs/a.md", "docs/b.md",
		"C75", "lib/base.go", "lib/copy.go",
	)
	changes, err := parseNameStatus(out)
	require.NoError(t, err)
	require.Len(t, changes, 6)

	assert.Equal(t, Change{Kind: Added, Path: "frontend/new.js"}, changes[0])
	assert.Equal(t, Change{Kind: Removed, Path: "frontend/old.js"}, changes[1])
	assert.Equal(t, Change{Kind: Modified, Path: "README.md"}, changes[2])
	assert.Equal(t, Change{Kind: Modified, Path: "scripts/run"}, changes[3])
	assert.Equal(t, Change{Kind: Renamed, OldPath: "docs/a.md", Path: "docs/b.md"}, changes[4])
	// A copy leaves the source untouched.
	assert.Equal(t, Change{Kind: Added, Path: "lib/copy.go"}, changes[5])
}

func TestParseNameStatusEmpty(t *testing.T) {
	changes, err := parseNameStatus("")
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestParseNameStatusUnknownStatus(t *testing.T) {
	_, err := parseNameStatus(nameStatus("U", "conflicted.go"))
	assert.ErrorContains(t, err, "unrecognized diff status")
}

func TestParseNameStatusTruncatedRecord(t *testing.T) {
	_, err := parseNameStatus(nameStatus("R100", "only-one-path"))
	assert.ErrorContains(t, err, "missing its path field")
}

func TestTouchedPathsSingleSidedChanges(t *testing.T) {
	// A pure addition or deletion contributes exactly its one real path;
	// there is no placeholder for the absent side to poison the set.
	paths := TouchedPaths([]Change{
		{Kind: Added, Path: "frontend/new.js"},
		{Kind: Removed, Path: "frontend/old.js"},
	})
	assert.Equal(t, []string{"frontend/new.js", "frontend/old.js"}, paths)
}

func TestTouchedPathsRenameContributesBothSides(t *testing.T) {
	paths := TouchedPaths([]Change{
		{Kind: Renamed, OldPath: "docs/a.md", Path: "docs/b.md"},
	})
	assert.Equal(t, []string{"docs/a.md", "docs/b.md"}, paths)
}

func TestTouchedPathsDeduplicates(t *testing.T) {
	paths := TouchedPaths([]Change{
		{Kind: Modified, Path: "README.md"},
		{Kind: Modified, Path: "README.md"},
		{Kind: Renamed, OldPath: "README.md", Path: "README.rst"},
	})
	assert.Equal(t, []string{"README.md", "README.rst"}, paths)
}
