package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the requested asset does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUnexpandedToken indicates an asset marker has no substitution value.
	ErrUnexpandedToken = errors.New("unexpanded template marker")
)
