// Package gitrepo provides typed access to the git CLI for the pieces of
// repository state the ownership check needs: whether a file exists on a
// branch, that file's contents on the branch, and the set of changes
// between HEAD and the target branch. All commands target a specific
// repository directory via the -C flag, which every Repository method
// injects.
package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Repository represents a git repository at a specific directory. There
// is no default directory — callers must always say which repository
// they mean.
type Repository struct {
	dir string
}

// New returns a Repository targeting the given directory.
func New(dir string) *Repository {
	return &Repository{dir: dir}
}

// Dir returns the repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Run executes a git command targeting this repository and returns
// stdout. Stderr is captured separately and included in error messages
// on failure.
func (r *Repository) Run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", r.dir}, args...)
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, "git", fullArgs...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("git %s in %s: %w (stderr: %s)",
			strings.Join(args, " "), r.dir, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// HasFile reports whether path exists as a blob in ref's tree. It never
// consults the working tree, so a file added only in the proposed change
// does not count.
func (r *Repository) HasFile(ctx context.Context, ref string, path string) (bool, error) {
	out, err := r.Run(ctx, "ls-tree", "--name-only", ref, "--", path)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// ReadFile returns the lines of path as committed on ref. Both Windows
// and Linux line endings are handled.
func (r *Repository) ReadFile(ctx context.Context, ref string, path string) ([]string, error) {
	out, err := r.Run(ctx, "show", ref+":"+path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%v' on '%v': %w", path, ref, err)
	}
	return strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n"), nil
}

// Changes returns the file changes the current HEAD proposes relative to
// targetRef, using the merge-base (three-dot) diff so that commits
// already on the target branch are not counted.
func (r *Repository) Changes(ctx context.Context, targetRef string) ([]Change, error) {
	out, err := r.Run(ctx, "diff", "--name-status", "-z", targetRef+"...HEAD")
	if err != nil {
		return nil, err
	}
	return parseNameStatus(out)
}
