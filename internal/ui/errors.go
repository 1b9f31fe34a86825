package ui

import "errors"

var (
	// ErrInputFailed wraps any failure to read an answer from stdin or the terminal.
	ErrInputFailed = errors.New("failed to read input")

	// ErrNoOptions is returned when Choose is called with an empty option list.
	ErrNoOptions = errors.New("no options provided")
)
