// Package ui provides the prompt layer used by the c-init wizard. The same
// wizard logic runs against a real terminal (huh forms) or against a
// pre-supplied list of answer lines read from a pipe.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// InputSource supplies wizard answers.
type InputSource interface {
	// Answer asks a free-text question and returns the answer.
	Answer(prompt string) (string, error)

	// Choose asks a single-choice question and returns the selected index.
	Choose(prompt string, options []string, defaultIndex int) (int, error)
}

// Option configures an InputSource.
type Option func(*sourceOptions)

type sourceOptions struct {
	highlight func(string) string
	theme     *huh.Theme
}

// WithHighlight sets the function used to style echoed replay answers.
func WithHighlight(fn func(string) string) Option {
	return func(o *sourceOptions) {
		if fn != nil {
			o.highlight = fn
		}
	}
}

// WithTheme sets the huh theme used for terminal prompts.
func WithTheme(theme *huh.Theme) Option {
	return func(o *sourceOptions) {
		o.theme = theme
	}
}

// NewInputSource selects the terminal or replay implementation once,
// based on the headless manager.
func NewInputSource(in io.Reader, out io.Writer, hm *HeadlessManager, opts ...Option) (InputSource, error) {
	if hm.IsHeadless() {
		return NewReplayInput(in, out, opts...)
	}
	return NewTerminalInput(in, out, opts...), nil
}

func applyOptions(opts []Option) sourceOptions {
	o := sourceOptions{highlight: func(s string) string { return s }}
	for _, opt := range opts {
		opt(&o)
	}
	if o.theme == nil {
		o.theme = NewWizardTheme()
	}
	return o
}

// --- replay mode ---

// ReplayInput answers questions from lines read eagerly at construction.
// Malformed or missing answers fall back to the caller's default.
type ReplayInput struct {
	lines []string
	out   io.Writer
	opts  sourceOptions
}

// NewReplayInput reads all of r and serves one line per question.
func NewReplayInput(r io.Reader, out io.Writer, opts ...Option) (*ReplayInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputFailed, err)
	}
	return &ReplayInput{
		lines: splitLines(string(data)),
		out:   out,
		opts:  applyOptions(opts),
	}, nil
}

// Answer writes the prompt, then consumes and echoes the next line.
// An exhausted queue yields "".
func (r *ReplayInput) Answer(prompt string) (string, error) {
	line := r.next()
	_, _ = fmt.Fprintf(r.out, "%s%s\n", prompt, line)
	return line, nil
}

// Choose consumes the next line as an option index.
func (r *ReplayInput) Choose(prompt string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	selected := clampIndex(defaultIndex, len(options))
	line := r.next()
	if idx, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && idx >= 0 && idx < len(options) {
		selected = idx
	}
	_, _ = fmt.Fprintf(r.out, "%s: %s (non-interactive)\n", prompt, r.opts.highlight(options[selected]))
	return selected, nil
}

func (r *ReplayInput) next() string {
	if len(r.lines) == 0 {
		return ""
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line
}

// splitLines splits text into lines, dropping the final empty line after a
// trailing newline and any carriage returns.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func clampIndex(idx, n int) int {
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}

// --- terminal mode ---

// TerminalInput prompts on a real terminal using huh forms.
type TerminalInput struct {
	in   io.Reader
	out  io.Writer
	opts sourceOptions
}

// NewTerminalInput creates a TerminalInput reading keys from in and
// rendering to out.
func NewTerminalInput(in io.Reader, out io.Writer, opts ...Option) *TerminalInput {
	return &TerminalInput{in: in, out: out, opts: applyOptions(opts)}
}

// Answer shows a text input and blocks until it is submitted.
func (t *TerminalInput) Answer(prompt string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(strings.TrimSpace(prompt)).
		Placeholder(".").
		Value(&value)
	if err := t.run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Choose shows a select list with the default preselected.
func (t *TerminalInput) Choose(prompt string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	selected := clampIndex(defaultIndex, len(options))
	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(label, i)
	}
	field := huh.NewSelect[int]().
		Title(prompt).
		Options(opts...).
		Value(&selected)
	if err := t.run(field); err != nil {
		return 0, err
	}
	return selected, nil
}

func (t *TerminalInput) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(t.opts.theme).
		WithInput(t.in).
		WithOutput(t.out).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("%w: aborted", ErrInputFailed)
		}
		return fmt.Errorf("%w: %w", ErrInputFailed, err)
	}
	return nil
}
