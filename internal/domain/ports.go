package domain

import (
	"context"
	"time"
)

// ManifestLoader reads a manifest file into the generic document form.
// Missing files and parse failures come back as sentinel manifests, never
// as errors.
type ManifestLoader interface {
	Load(path string) Manifest
}

// CommandResult captures one external command invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner executes external tooling (docker, kind, kubectl).
// A non-zero exit is reported through ExitCode, not as an error; errors mean
// the command could not run at all (not installed, context expired).
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
	RunWithTimeout(timeout time.Duration, name string, args ...string) (CommandResult, error)
}

// StepReporter receives progress from the deployment pipeline.
type StepReporter interface {
	Start(step string)
	Success(step, detail string)
	Failure(step, detail, hint string)
	Note(line string)
}

// GradeHistory persists grading runs for a challenge directory.
type GradeHistory interface {
	Save(dir string, entry GradeEntry) error
	Load(dir string) ([]GradeEntry, error)
}

// GitInfo resolves version-control metadata for a directory.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}

// OptionsLoader reads the optional .kubegrade.yaml overrides.
type OptionsLoader interface {
	Load(dir string) (Options, error)
}
