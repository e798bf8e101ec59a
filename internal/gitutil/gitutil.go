package gitutil

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, dir, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using os/exec.Command.
type DefaultRunner struct{}

func (r DefaultRunner) CombinedOutput(ctx context.Context, dir, name string, arg ...string) ([]byte, error) {
	cmd := commandContext(ctx, dir, name, arg...)
	return cmd.CombinedOutput()
}

// commandContext is a helper to create a *exec.Cmd with context.
func commandContext(ctx context.Context, dir, name string, arg ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Dir = dir
	return cmd
}

var runner CommandRunner = DefaultRunner{}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(ctx context.Context, dir string) (bool, error) {
	out, err := runner.CombinedOutput(ctx, dir, "git", "rev-parse", "--is-inside-work-tree")
	if err != nil {
		if strings.Contains(strings.ToLower(string(out)), "not a git repository") {
			return false, nil
		}
		return false, fmt.Errorf("error running git rev-parse: %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)) == "true", nil
}

// Init runs git init in dir unless it is already a repository. It reports
// whether a new repository was created.
func Init(ctx context.Context, dir string) (bool, error) {
	ok, err := IsRepo(ctx, dir)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	out, err := runner.CombinedOutput(ctx, dir, "git", "init", "--quiet")
	if err != nil {
		return false, fmt.Errorf("error running git init: %w, output: %s", err, strings.TrimSpace(string(out)))
	}
	return true, nil
}

// SetRunner replaces the runner used by IsRepo and Init.
func SetRunner(r CommandRunner) {
	runner = r
}
