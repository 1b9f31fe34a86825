// Package project resolves the configuration of a new C project and
// scaffolds it on disk: directories, build files, linter config and an
// optional git repository.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrCancelled indicates the user declined to overwrite a non-empty
	// directory. It is a deliberate abort, not a failure.
	ErrCancelled = errors.New("cancelled by user")

	// ErrDirectoryNotEmpty indicates the target directory has content and
	// --force was not given.
	ErrDirectoryNotEmpty = errors.New("directory not empty")
)

// NotEmptyError reports a non-empty target directory. It matches
// ErrDirectoryNotEmpty with errors.Is.
type NotEmptyError struct {
	Path string
}

// Error implements the error interface.
func (e *NotEmptyError) Error() string {
	return "The folder " + e.Path + " is not empty (use --force to proceed)"
}

// Is supports errors.Is(err, ErrDirectoryNotEmpty).
func (e *NotEmptyError) Is(target error) bool {
	return target == ErrDirectoryNotEmpty
}
