package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/c-init/c-init/internal/config"
	"github.com/c-init/c-init/internal/ui"
	"github.com/c-init/c-init/pkg/models"
)

// CurrentDir is the path value meaning "scaffold into the working directory".
const CurrentDir = "."

// fallbackName is used when no name can be derived from the path.
const fallbackName = "project"

// Wizard prompts, in the order they are asked.
const (
	PromptNameOrPath       = "Project Name [.]: "
	PromptOverwrite        = "Folder not empty. Overwrite?"
	PromptCompiler         = "Compiler"
	PromptStrictness       = "Compiler Strictness"
	PromptLinterStrictness = "Linter Strictness"
	PromptGitInit          = "Run git init?"
	PromptTests            = "Generate tests?"
)

// sameAsStrictness is option 0 of the linter question.
const sameAsStrictness = "(same as strictness)"

var yesNo = []string{"No", "Yes"}

// Options holds the values given on the command line. A nil pointer means
// the option was not supplied and may be asked or defaulted.
type Options struct {
	Name             *string
	Path             *string
	Compiler         *models.Compiler
	Strictness       *models.Strictness
	LinterStrictness *models.Strictness
	Color            *models.ColorMode

	NoGit    *bool
	NoCommit *bool
	NoHello  *bool
	NoTests  *bool
	Force    *bool

	// Interactive runs the wizard for every option not supplied.
	Interactive bool
}

// Resolver merges explicit options, wizard answers and defaults into a
// models.Config.
type Resolver struct {
	fs       afero.Fs
	input    ui.InputSource
	defaults *config.Defaults
	getwd    func() (string, error)
	logger   *slog.Logger
}

// NewResolver creates a Resolver. input may be nil when the wizard is never
// requested; a nil defaults uses the built-in defaults.
func NewResolver(fsys afero.Fs, input ui.InputSource, defaults *config.Defaults, logger *slog.Logger) *Resolver {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if defaults == nil {
		defaults = config.NewDefaults()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{
		fs:       fsys,
		input:    input,
		defaults: defaults,
		getwd:    os.Getwd,
		logger:   logger,
	}
}

// resolveField applies the precedence chain for one option: an explicit
// value wins, then the wizard answer when ask is non-nil, then def.
func resolveField[T any](explicit *T, ask func() (T, error), def T) (T, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if ask != nil {
		return ask()
	}
	return def, nil
}

// Resolve produces the final configuration. It returns ErrCancelled when
// the user declines to overwrite a non-empty directory.
func (r *Resolver) Resolve(opts Options) (models.Config, error) {
	if opts.Interactive && r.input == nil {
		return models.Config{}, errors.New("interactive mode requires an input source")
	}
	d := r.defaults
	wizard := opts.Interactive

	// The combined name/path question is only asked when neither was given.
	path, err := resolveField(opts.Path, ask(wizard && opts.Name == nil, r.askPath), CurrentDir)
	if err != nil {
		return models.Config{}, err
	}
	if path == "" {
		path = CurrentDir
	}

	force := deref(opts.Force, false)
	if wizard && !force {
		force, err = r.confirmOverwrite(path)
		if err != nil {
			return models.Config{}, err
		}
	}

	cc, err := resolveField(opts.Compiler, ask(wizard, func() (models.Compiler, error) {
		return chooseEnum(r.input, PromptCompiler, models.ValidCompilers(), d.Compiler)
	}), d.Compiler)
	if err != nil {
		return models.Config{}, err
	}

	strictness, err := resolveField(opts.Strictness, ask(wizard, func() (models.Strictness, error) {
		return chooseEnum(r.input, PromptStrictness, models.ValidStrictness(), d.Strictness)
	}), d.Strictness)
	if err != nil {
		return models.Config{}, err
	}

	linter, err := resolveField(opts.LinterStrictness, ask(wizard, r.askLinter), deref(d.LinterOrDefault(), ""))
	if err != nil {
		return models.Config{}, err
	}
	// Unset linter strictness follows the compiler tier.
	if linter == "" {
		linter = strictness
	}

	noGit, err := resolveField(opts.NoGit, ask(wizard, func() (bool, error) {
		return r.confirm(PromptGitInit, !d.NoGit)
	}), d.NoGit)
	if err != nil {
		return models.Config{}, err
	}

	noTests, err := resolveField(opts.NoTests, ask(wizard, func() (bool, error) {
		return r.confirm(PromptTests, !d.NoTests)
	}), d.NoTests)
	if err != nil {
		return models.Config{}, err
	}

	name := deref(opts.Name, "")
	if name == "" {
		name = r.deriveName(path)
	}

	cfg := models.Config{
		Name:             name,
		Path:             path,
		Compiler:         cc,
		Strictness:       strictness,
		LinterStrictness: linter,
		Color:            deref(opts.Color, d.Color),
		NoGit:            noGit,
		NoCommit:         deref(opts.NoCommit, d.NoCommit),
		NoHello:          deref(opts.NoHello, d.NoHello),
		NoTests:          noTests,
		Force:            force,
	}
	r.logger.Debug("configuration resolved",
		"name", cfg.Name, "path", cfg.Path, "compiler", cfg.Compiler,
		"strictness", cfg.Strictness, "linter", cfg.LinterStrictness,
		"force", cfg.Force, "no_git", cfg.NoGit, "no_tests", cfg.NoTests)
	return cfg, nil
}

// ask returns fn in wizard mode and nil otherwise, so resolveField falls
// through to the default.
func ask[T any](wizard bool, fn func() (T, error)) func() (T, error) {
	if !wizard {
		return nil
	}
	return fn
}

// askPath asks the combined name/path question. Any answer other than ""
// or "." becomes the project path.
func (r *Resolver) askPath() (string, error) {
	entry, err := r.input.Answer(PromptNameOrPath)
	if err != nil {
		return "", err
	}
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return CurrentDir, nil
	}
	return entry, nil
}

// confirmOverwrite asks before reusing a non-empty directory. Declining
// returns ErrCancelled.
func (r *Resolver) confirmOverwrite(path string) (bool, error) {
	nonEmpty, err := r.isNonEmptyDir(path)
	if err != nil {
		r.logger.Debug("directory probe failed", "path", path, "error", err)
		return false, nil
	}
	if !nonEmpty {
		return false, nil
	}
	idx, err := r.input.Choose(PromptOverwrite, yesNo, 0)
	if err != nil {
		return false, err
	}
	if idx != 1 {
		return false, ErrCancelled
	}
	return true, nil
}

// askLinter maps option 0 to the unset tier.
func (r *Resolver) askLinter() (models.Strictness, error) {
	tiers := models.ValidStrictness()
	options := append([]string{sameAsStrictness}, toStrings(tiers)...)
	def := 0
	if linter := r.defaults.LinterOrDefault(); linter != nil && linter.Rank() >= 0 {
		def = linter.Rank() + 1
	}
	idx, err := r.input.Choose(PromptLinterStrictness, options, def)
	if err != nil {
		return "", err
	}
	if idx <= 0 || idx > len(tiers) {
		return "", nil
	}
	return tiers[idx-1], nil
}

// confirm asks a No/Yes question and reports whether the answer was No,
// matching the polarity of the skip toggles.
func (r *Resolver) confirm(prompt string, defaultYes bool) (bool, error) {
	def := 0
	if defaultYes {
		def = 1
	}
	idx, err := r.input.Choose(prompt, yesNo, def)
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

// chooseEnum asks a single-choice question over enum values, preselecting
// def. Out-of-range indexes resolve to def.
func chooseEnum[T ~string](input ui.InputSource, prompt string, values []T, def T) (T, error) {
	idx, err := input.Choose(prompt, toStrings(values), max(slices.Index(values, def), 0))
	if err != nil {
		return def, err
	}
	if idx < 0 || idx >= len(values) {
		return def, nil
	}
	return values[idx], nil
}

// isNonEmptyDir reports whether path is an existing directory with at
// least one entry. Missing paths and regular files are not "non-empty".
func (r *Resolver) isNonEmptyDir(path string) (bool, error) {
	abs, err := r.abs(path)
	if err != nil {
		return false, err
	}
	return isNonEmptyDir(r.fs, abs)
}

func (r *Resolver) abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	cwd, err := r.getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}

// deriveName uses the last path segment, or the working directory name
// for ".".
func (r *Resolver) deriveName(path string) string {
	var base string
	if filepath.Clean(path) == CurrentDir {
		if cwd, err := r.getwd(); err == nil {
			base = filepath.Base(cwd)
		}
	} else {
		base = filepath.Base(filepath.Clean(path))
	}
	if base == "" || base == CurrentDir || base == string(filepath.Separator) {
		return fallbackName
	}
	return base
}

func isNonEmptyDir(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}
	empty, err := afero.IsEmpty(fsys, path)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
