package ownership

import "fmt"

// ManifestLocations are the supported CODEOWNERS locations, in the order
// they are probed. See
// https://docs.github.com/en/repositories/managing-your-repositorys-settings-and-features/customizing-your-repository/about-code-owners
var ManifestLocations = []string{"CODEOWNERS", ".github/CODEOWNERS", "docs/CODEOWNERS"}

// ChooseManifest picks the single manifest location to use, given which
// of the candidate locations exist. The presence flags must be probed on
// the target branch's tree, since ownership is evaluated against the
// state being merged into.
//
// Exactly one candidate must be present: zero is ErrManifestMissing,
// and more than one is ErrManifestConflict — nobody gets to sneak an
// unguarded shadow CODEOWNERS into the repo.
func ChooseManifest(locations []string, present []bool) (string, error) {
	chosen := ""
	for i, location := range locations {
		if i >= len(present) || !present[i] {
			continue
		}
		if chosen != "" {
			return "", fmt.Errorf("%w: both '%v' and '%v' exist", ErrManifestConflict, chosen, location)
		}
		chosen = location
	}
	if chosen == "" {
		return "", fmt.Errorf("%w at any of the supported paths %v", ErrManifestMissing, locations)
	}
	return chosen, nil
}
