package ownership

import "fmt"

// Index holds the ownership entries relevant to one actor and answers
// coverage queries against them.
type Index struct {
	entries []Entry
}

// NewIndex wraps already-filtered entries. Order is preserved but has no
// effect on coverage; a single match is sufficient.
func NewIndex(entries []Entry) Index {
	return Index{entries: entries}
}

// Covers reports whether any held entry's pattern matches path, along
// with the first entry that did.
func (ix Index) Covers(path string) (Entry, bool) {
	for _, entry := range ix.entries {
		if entry.Matches(path) {
			return entry, true
		}
	}
	return Entry{}, false
}

// Result is the outcome of one auto-approval evaluation: the verdict
// plus the ordered diagnostic lines that explain it. The diagnostics are
// advisory, for log consumption only; they never affect the verdict.
type Result struct {
	Approved    bool
	Diagnostics []string
}

// Evaluate decides whether actor is an owner of every touched path.
//
// Two conservative defaults are part of the policy, not incidental:
// an actor with no relevant entries is never approved, and an empty
// touched-path set is never approved either — absence of a diff must
// not default to approval. Otherwise paths are checked in order and the
// first uncovered path fails the evaluation immediately, so operators
// reading the log top to bottom see the failing path last.
func Evaluate(actor string, entries []Entry, paths []string) Result {
	if len(entries) == 0 {
		return Result{
			Approved:    false,
			Diagnostics: []string{fmt.Sprintf("user %v has no valid paths in CODEOWNERS", actor)},
		}
	}
	if len(paths) == 0 {
		return Result{
			Approved:    false,
			Diagnostics: []string{"no paths were touched, there is nothing for the user to own"},
		}
	}
	index := NewIndex(entries)
	var diagnostics []string
	for _, path := range paths {
		entry, covered := index.Covers(path)
		if !covered {
			diagnostics = append(diagnostics,
				fmt.Sprintf("user %v is not a CODEOWNER of path %v", actor, path))
			return Result{Approved: false, Diagnostics: diagnostics}
		}
		diagnostics = append(diagnostics,
			fmt.Sprintf("user %v is a CODEOWNER of path %v (pattern '%v')", actor, path, entry.Pattern))
	}
	diagnostics = append(diagnostics,
		fmt.Sprintf("user %v is a CODEOWNER of all %v touched paths", actor, len(paths)))
	return Result{Approved: true, Diagnostics: diagnostics}
}
