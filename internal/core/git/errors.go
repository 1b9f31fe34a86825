// Package git wraps the system git binary for the few commands c-init runs
// after scaffolding a project.
package git

import "errors"

// ErrSystemGitNotFound indicates no git executable was found on PATH.
var ErrSystemGitNotFound = errors.New("git: system git not found")
