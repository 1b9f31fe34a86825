package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/c-init/c-init/internal/core/project"
	"github.com/c-init/c-init/pkg/models"
)

// WizardBanner is printed before the first wizard question.
const WizardBanner = "--- c-init Interactive Wizard ---"

// styles renders CLI output for one stream. ANSI color numbers keep the
// output identical across terminal themes.
type styles struct {
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// newStyles builds styles bound to w. Colors are emitted for "always",
// never for "never", and for "auto" only when isTTY is true.
func newStyles(w io.Writer, mode models.ColorMode, isTTY bool) *styles {
	r := lipgloss.NewRenderer(w)
	if mode == models.ColorAlways || (mode != models.ColorNever && isTTY) {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &styles{
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printError writes "Error: <message>" to w.
func (s *styles) printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %v\n", s.err.Render("Error:"), err)
}

// printWarning writes "Warning: <message>" to w.
func (s *styles) printWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", s.warn.Render("Warning:"), s.muted.Render(msg))
}

type nextStep struct {
	command string
	comment string
}

// printSummary writes the success message and the suggested make targets.
func (s *styles) printSummary(w io.Writer, result *project.Result) {
	cfg := result.Config
	_, _ = fmt.Fprintf(w, "%s project '%s' at %s (using %s)\n\n",
		s.success.Render("Created"), cfg.Name, cfg.Path, result.Invocation)

	steps := []nextStep{
		{"make", "# debug build"},
		{"make run", "# build+run"},
		{"make watch", "# run in watch mode"},
	}
	if cfg.WithTests() {
		steps = append(steps, nextStep{"make test", "# build and run tests"})
	}
	steps = append(steps, nextStep{"make release", "# release build"})

	_, _ = fmt.Fprintln(w, "Next steps:")
	for _, step := range steps {
		_, _ = fmt.Fprintf(w, "  %-12s %s\n", step.command, s.muted.Render(step.comment))
	}
	_, _ = fmt.Fprintln(w, "\nHappy Hacking!")
}
