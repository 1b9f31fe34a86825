package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Compile-time interface compliance check.
var _ Runner = (*execRunner)(nil)

// Runner runs the git commands used to initialise a fresh project.
type Runner interface {
	// Init creates an empty repository in dir.
	Init(ctx context.Context, dir string) error

	// AddAll stages every file in dir.
	AddAll(ctx context.Context, dir string) error

	// Commit records the staged files with the given message.
	Commit(ctx context.Context, dir, message string) error
}

// execRunner implements Runner with the system git binary.
type execRunner struct {
	lookPath func(string) (string, error)
	logger   *slog.Logger
}

// NewRunner creates a Runner backed by the git executable on PATH.
func NewRunner(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execRunner{lookPath: exec.LookPath, logger: logger}
}

// Init runs "git init -q".
func (r *execRunner) Init(ctx context.Context, dir string) error {
	_, err := r.exec(ctx, dir, "init", "-q")
	return err
}

// AddAll runs "git add -A".
func (r *execRunner) AddAll(ctx context.Context, dir string) error {
	_, err := r.exec(ctx, dir, "add", "-A")
	return err
}

// Commit runs "git commit -m <message>". Output is discarded.
func (r *execRunner) Commit(ctx context.Context, dir, message string) error {
	_, err := r.exec(ctx, dir, "commit", "-m", message)
	return err
}

// exec executes a git command in dir and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func (r *execRunner) exec(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := r.lookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running git", "dir", dir, "args", args)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(stderr.String()), err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
