// Package cli provides the Cobra command tree for c-init and wires the
// domain packages together.
package cli

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/c-init/c-init/internal/core/git"
	"github.com/c-init/c-init/internal/toolchain"
	"github.com/c-init/c-init/internal/ui"
)

// Dependencies holds the collaborators used by the root command. This is
// the only place where concrete implementations are chosen; tests replace
// individual fields.
type Dependencies struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Fs       afero.Fs
	Git      git.Runner // nil uses the system git binary
	Headless *ui.HeadlessManager
	Getwd    func() (string, error)
	Chdir    func(string) error
	Platform string
	LookPath toolchain.LookPathFunc

	// StdoutIsTerminal decides whether --color=auto emits ANSI codes.
	StdoutIsTerminal func() bool
}

// NewDependencies returns the production wiring.
func NewDependencies() *Dependencies {
	return &Dependencies{
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Fs:               afero.NewOsFs(),
		Headless:         ui.NewHeadlessManager(),
		Getwd:            os.Getwd,
		Chdir:            os.Chdir,
		Platform:         runtime.GOOS,
		StdoutIsTerminal: func() bool { return isTerminal(os.Stdout) },
	}
}

// newLogger returns a discarding logger, or a debug-level charmbracelet/log
// handler on w when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "c-init",
	})
	return slog.New(handler)
}
