package ownership

import "errors"

// Sentinel errors for manifest parsing and discovery. All of them are
// terminal for the run: the caller must abort rather than substitute a
// default verdict.
var (
	// ErrFormat indicates a manifest line that cannot be split into a
	// pattern and at least one owner.
	ErrFormat = errors.New("line cannot be parsed as valid CODEOWNERS syntax")
	// ErrNoOwners indicates a rule whose owner set came out empty.
	ErrNoOwners = errors.New("rule has no owners")
	// ErrManifestMissing indicates that no CODEOWNERS file exists at any
	// of the supported locations.
	ErrManifestMissing = errors.New("no CODEOWNERS file found")
	// ErrManifestConflict indicates that more than one CODEOWNERS file
	// exists. An ownership check must never silently pick one of them.
	ErrManifestConflict = errors.New("found more than one CODEOWNERS file in the repository")
)
