package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFor(t *testing.T, actor string, lines ...string) []Entry {
	t.Helper()
	entries, err := ParseLines(lines, actor, false)
	require.NoError(t, err)
	return entries
}

func TestEvaluateEmptyEntriesIsNeverApproved(t *testing.T) {
	result := Evaluate("@anyone", nil, []string{"frontend/app.js", "README.md"})
	assert.False(t, result.Approved)
	assert.NotEmpty(t, result.Diagnostics)
}

func TestEvaluateEmptyDiffIsNeverApproved(t *testing.T) {
	entries := parseFor(t, "@fe-owner", "frontend/ @fe-owner")
	result := Evaluate("@fe-owner", entries, nil)
	assert.False(t, result.Approved, "absence of a diff must not default to approval")
	assert.NotEmpty(t, result.Diagnostics)
}

func TestEvaluateFailsFastOnFirstUncoveredPath(t *testing.T) {
	entries := parseFor(t, "@fe-owner", "frontend/ @fe-owner")
	paths := []string{"frontend/a.js", "backend/server.go", "frontend/b.js"}
	result := Evaluate("@fe-owner", entries, paths)
	assert.False(t, result.Approved)
	// One line for the covered path, one for the failure; the path after
	// the failure is never evaluated.
	require.Len(t, result.Diagnostics, 2)
	assert.Contains(t, result.Diagnostics[1], "backend/server.go")
}

func TestEvaluateAllPathsCovered(t *testing.T) {
	entries := parseFor(t, "@fe-owner", "frontend/ @fe-owner @stack-owner")
	result := Evaluate("@fe-owner", entries, []string{"frontend/app.js"})
	assert.True(t, result.Approved)
	// One line per path plus the summary.
	assert.Len(t, result.Diagnostics, 2)
}

func TestScenarioSharedFrontendOwnership(t *testing.T) {
	manifest := []string{"frontend/ @fe-owner @stack-owner"}
	paths := []string{"frontend/app.js"}

	for _, actor := range []string{"@fe-owner", "@stack-owner"} {
		entries := parseFor(t, actor, manifest...)
		assert.True(t, Evaluate(actor, entries, paths).Approved, "actor %v", actor)
	}

	entries := parseFor(t, "@doc-owner", manifest...)
	assert.False(t, Evaluate("@doc-owner", entries, paths).Approved)
}

func TestScenarioDocsAndReadme(t *testing.T) {
	manifest := []string{
		"docs/*.md @a",
		"README.md @a",
	}
	entries := parseFor(t, "@a", manifest...)

	owned := Evaluate("@a", entries, []string{"README.md", "docs/onboarding.md", "docs/tips.md"})
	assert.True(t, owned.Approved)

	notOwned := Evaluate("@a", entries, []string{"docs/examples/example-app.py"})
	assert.False(t, notOwned.Approved)
}

func TestIndexCoversReportsMatchingEntry(t *testing.T) {
	entries := parseFor(t, "@a", "docs/*.md @a", "README.md @a")
	index := NewIndex(entries)

	entry, ok := index.Covers("docs/tips.md")
	require.True(t, ok)
	assert.Equal(t, "docs/*.md", entry.Pattern)

	_, ok = index.Covers("docs/examples/deep.md")
	assert.False(t, ok)
}
