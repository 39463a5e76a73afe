package gitrepo

import "fmt"

// ChangeKind says what happened to a file in the diff.
type ChangeKind uint8

const (
	// Added means the file exists only after the change.
	Added ChangeKind = iota
	// Removed means the file exists only before the change.
	Removed
	// Modified means the file exists on both sides under the same path.
	Modified
	// Renamed means the file moved from OldPath to Path.
	Renamed
)

// Change is one file change between HEAD and the target branch. Path is
// the file's path on the side where it exists (the new side for renames);
// OldPath is set only for renames. Modeling the kinds explicitly means a
// created or deleted file carries exactly one path — there is no absent
// side to mistake for a real one.
type Change struct {
	Kind    ChangeKind
	Path    string
	OldPath string
}

// Paths returns the repository paths this change touches: both sides for
// a rename, the single existing side for everything else.
func (c Change) Paths() []string {
	if c.Kind == Renamed {
		return []string{c.OldPath, c.Path}
	}
	return []string{c.Path}
}

// TouchedPaths reduces changes to the deduplicated set of paths the
// ownership check must cover, in first-seen order.
func TouchedPaths(changes []Change) []string {
	seen := map[string]bool{}
	var paths []string
	for _, change := range changes {
		for _, path := range change.Paths() {
			if seen[path] {
				continue
			}
			seen[path] = true
			paths = append(paths, path)
		}
	}
	return paths
}

// parseNameStatus decodes the NUL-separated output of
// 'git diff --name-status -z'. Each record is a status field followed by
// one path, or two paths for renames and copies (score suffixes like
// R100 are carried on the status field).
func parseNameStatus(out string) ([]Change, error) {
	var changes []Change
	fields := splitNul(out)
	for i := 0; i < len(fields); {
		status := fields[i]
		if status == "" {
			i++
			continue
		}
		twoPaths := status[0] == 'R' || status[0] == 'C'
		want := 1
		if twoPaths {
			want = 2
		}
		if len(fields)-i-1 < want {
			return nil, fmt.Errorf("diff record '%v' is missing its path field(s)", status)
		}
		switch status[0] {
		case 'A':
			changes = append(changes, Change{Kind: Added, Path: fields[i+1]})
		case 'D':
			changes = append(changes, Change{Kind: Removed, Path: fields[i+1]})
		case 'M', 'T':
			// Type changes (T) touch the file the same way an edit does.
			changes = append(changes, Change{Kind: Modified, Path: fields[i+1]})
		case 'R':
			changes = append(changes, Change{Kind: Renamed, OldPath: fields[i+1], Path: fields[i+2]})
		case 'C':
			// A copy leaves the source untouched; only the new path is
			// part of the change.
			changes = append(changes, Change{Kind: Added, Path: fields[i+2]})
		default:
			return nil, fmt.Errorf("unrecognized diff status '%v'", status)
		}
		i += 1 + want
	}
	return changes, nil
}

func splitNul(out string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(out); i++ {
		if out[i] == 0 {
			fields = append(fields, out[start:i])
			start = i + 1
		}
	}
	if start < len(out) {
		fields = append(fields, out[start:])
	}
	return fields
}
