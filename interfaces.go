package main

import (
	"context"

	"github.com/teal-ci/codeowners-gate/gitrepo"
)

type manifestSource interface {
	HasFile(ctx context.Context, ref string, path string) (bool, error)
	ReadFile(ctx context.Context, ref string, path string) ([]string, error)
}

type changeLister interface {
	Changes(ctx context.Context, targetRef string) ([]gitrepo.Change, error)
}
