package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// VersionControlClient clones a remote repository into a local directory
type VersionControlClient interface {
	Clone(ctx context.Context, sourceURL string, destination string) error
}

type gitClient struct {
	gitBinary string
	stdout    io.Writer
	stderr    io.Writer
}

// NewGitClient runs the git binary found on PATH (or the given path) and streams its output to the console
func NewGitClient(gitBinary string) VersionControlClient {
	if gitBinary == "" {
		gitBinary = "git"
	}

	return gitClient{
		gitBinary: gitBinary,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

func (c gitClient) Clone(ctx context.Context, sourceURL string, destination string) error {
	cmd := exec.CommandContext(ctx, c.gitBinary, "clone", sourceURL, destination)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone %s into %s: %w", sourceURL, destination, err)
	}

	return nil
}
