// codeowners-gate decides whether the user who initiated a CI workflow
// is a CODEOWNER of every path touched in the diff between HEAD and the
// target branch, and therefore allowed to self-approve the change. The
// verdict is printed as result=true/false and appended to $GITHUB_OUTPUT
// when that is set.
//
// Exit codes: 0 when the user owns every touched path, 1 when they do
// not, 2 when the check itself could not run (bad configuration, missing
// or conflicting CODEOWNERS, unparseable manifest). An error is never
// reported as a false verdict.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/teal-ci/codeowners-gate/gitrepo"
	"github.com/teal-ci/codeowners-gate/ownership"
)

type envVarArgs struct {
	Actor             string `env:"GITHUB_ACTOR"`
	TargetBranch      string `env:"GITHUB_BASE_REF"`
	RepoPath          string `env:"GITHUB_WORKSPACE" envDefault:"/github/workspace"`
	OutputFile        string `env:"GITHUB_OUTPUT"`
	RequireAnnotation bool   `env:"REQUIRE_ANNOTATION" envDefault:"false"`
	Debug             bool   `env:"DEBUG" envDefault:"false"`
}

func main() {
	os.Exit(run())
}

func run() int {
	// Get args from env vars, then let flags override them
	envVars := envVarArgs{}
	if err := env.Parse(&envVars); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	pflag.StringVarP(&envVars.Actor, "user", "u", envVars.Actor,
		"username of the entity who initiated the workflow; defaults to $GITHUB_ACTOR")
	pflag.StringVarP(&envVars.TargetBranch, "target-branch", "t", envVars.TargetBranch,
		"branch that the code change is being merged into; defaults to $GITHUB_BASE_REF")
	pflag.StringVarP(&envVars.RepoPath, "path-to-repository", "p", envVars.RepoPath,
		"where the repository is mounted, if anywhere other than /github/workspace")
	pflag.BoolVar(&envVars.RequireAnnotation, "require-annotation", envVars.RequireAnnotation,
		"only count CODEOWNERS lines annotated with '"+ownership.AnnotationToken+"'")
	pflag.BoolVar(&envVars.Debug, "debug", envVars.Debug, "enable debug logging")
	pflag.Parse()

	setLogLevel(envVars.Debug)

	if envVars.Actor == "" || envVars.TargetBranch == "" {
		fmt.Fprintln(os.Stderr, "error: a user (--user or $GITHUB_ACTOR) and a target branch (--target-branch or $GITHUB_BASE_REF) are required")
		pflag.Usage()
		return 2
	}
	// Manifest owner tokens carry a leading '@', but $GITHUB_ACTOR does not.
	if !strings.HasPrefix(envVars.Actor, "@") {
		envVars.Actor = "@" + envVars.Actor
	}

	ctx := context.Background()
	repo := gitrepo.New(envVars.RepoPath)
	approved, err := decideAutoApproval(ctx, repo, repo, envVars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if err := writeResult(envVars.OutputFile, approved); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if approved {
		return 0
	}
	return 1
}

// decideAutoApproval finds the target branch's CODEOWNERS, parses it down
// to the actor's entries and evaluates them against the touched paths.
// Everything after the two collaborator calls happens in memory.
func decideAutoApproval(ctx context.Context, manifests manifestSource, diffs changeLister, args envVarArgs) (bool, error) {
	present := make([]bool, len(ownership.ManifestLocations))
	for i, location := range ownership.ManifestLocations {
		exists, err := manifests.HasFile(ctx, args.TargetBranch, location)
		if err != nil {
			return false, err
		}
		present[i] = exists
	}
	manifestPath, err := ownership.ChooseManifest(ownership.ManifestLocations, present)
	if err != nil {
		return false, err
	}
	slog.Debug("found CODEOWNERS", "path", manifestPath, "branch", args.TargetBranch)

	lines, err := manifests.ReadFile(ctx, args.TargetBranch, manifestPath)
	if err != nil {
		return false, err
	}
	entries, err := ownership.ParseLines(lines, args.Actor, args.RequireAnnotation)
	if err != nil {
		return false, err
	}
	patterns := make([]string, len(entries))
	for i, entry := range entries {
		patterns[i] = entry.Pattern
	}
	slog.Info("user is a CODEOWNER of the following patterns",
		"user", args.Actor, "patterns", strings.Join(patterns, " "))

	changes, err := diffs.Changes(ctx, args.TargetBranch)
	if err != nil {
		return false, err
	}
	slog.Info("checking ownership", "diffs", len(changes))

	result := ownership.Evaluate(args.Actor, entries, gitrepo.TouchedPaths(changes))
	for _, line := range result.Diagnostics {
		slog.Info(line)
	}
	return result.Approved, nil
}

// writeResult prints the verdict and, when GITHUB_OUTPUT is set, appends
// it there so later workflow steps can read it.
func writeResult(outputFile string, approved bool) error {
	fmt.Printf("result=%v\n", approved)
	if outputFile == "" {
		return nil
	}
	f, err := os.OpenFile(outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open output file '%v': %w", outputFile, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "result=%v\n", approved); err != nil {
		return fmt.Errorf("unable to write result to '%v': %w", outputFile, err)
	}
	return nil
}

func setLogLevel(setToDebug bool) {
	logLevel := slog.LevelInfo
	if setToDebug {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, opts))
	slog.SetDefault(logger)
}
