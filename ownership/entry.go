// Package ownership implements the CODEOWNERS auto-approval policy
// engine: parsing manifest lines into per-actor ownership entries,
// deciding whether a pattern covers a repository path, and aggregating
// the per-path answers into a single verdict. The package performs no
// file or network access; collaborators hand it the manifest lines and
// the touched paths.
package ownership

import (
	"fmt"
	"strings"
)

// AnnotationToken marks a manifest line as eligible for auto-approval
// when annotation enforcement is enabled.
const AnnotationToken = "!auto-approve"

// Entry is one parsed CODEOWNERS rule: a path pattern plus the owners it
// names. The pattern is kept verbatim from the manifest; its matching
// rule and the pieces that rule needs are classified once at parse time.
type Entry struct {
	Pattern string
	Owners  []string
	Comment string

	kind patternKind
	dir  string
	ext  string
}

// NewEntry builds an entry from a pattern and its owners, classifying
// the pattern. An empty owner set is rejected.
func NewEntry(pattern string, owners []string, comment string) (Entry, error) {
	if len(owners) == 0 {
		return Entry{}, fmt.Errorf("pattern '%v': %w", pattern, ErrNoOwners)
	}
	kind, dir, ext := classifyPattern(pattern)
	return Entry{
		Pattern: pattern,
		Owners:  owners,
		Comment: comment,
		kind:    kind,
		dir:     dir,
		ext:     ext,
	}, nil
}

// Names reports whether the entry lists actor as one of its owners.
func (e Entry) Names(actor string) bool {
	for _, owner := range e.Owners {
		if owner == actor {
			return true
		}
	}
	return false
}

// ParseLines parses raw CODEOWNERS lines and returns the entries that
// name actor as an owner. Entries for other actors are dropped here so
// they never reach matching or diagnostics.
//
// Blank lines, comment lines and the '* ' default-owner line are
// skipped; the default owner is never eligible for auto-approval. Any
// other line must have the form:
//
//	<pattern>  @owner1 @owner2 ...  # optional comment
//
// and fails with ErrFormat otherwise. When requireAnnotation is set,
// entries whose trailing comment lacks the '!auto-approve' token are
// dropped as well.
func ParseLines(lines []string, actor string, requireAnnotation bool) ([]Entry, error) {
	var entries []Entry
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if skipLine(line) {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("CODEOWNERS line %v: %w", i+1, err)
		}
		if !entry.Names(actor) {
			continue
		}
		if requireAnnotation && !strings.Contains(entry.Comment, AnnotationToken) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Skip any blank/whitespace or comment lines, plus the default-owner
// line. Assumes line is already trimmed.
func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "* ")
}

func parseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, fmt.Errorf("'%v': %w", line, ErrFormat)
	}
	pattern := fields[0]
	// The pattern field must not look like an owner or a comment, and
	// must not embed either marker.
	if strings.ContainsAny(pattern, "@#") {
		return Entry{}, fmt.Errorf("'%v': %w", line, ErrFormat)
	}
	var owners []string
	comment := ""
	for j, field := range fields[1:] {
		if strings.HasPrefix(field, "#") {
			comment = strings.Join(fields[1+j:], " ")
			break
		}
		if !strings.HasPrefix(field, "@") {
			return Entry{}, fmt.Errorf("'%v': %w", line, ErrFormat)
		}
		owners = append(owners, field)
	}
	return NewEntry(pattern, owners, comment)
}
