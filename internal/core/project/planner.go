package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"

	"github.com/c-init/c-init/internal/config"
	"github.com/c-init/c-init/internal/core/git"
	"github.com/c-init/c-init/internal/template"
	"github.com/c-init/c-init/internal/toolchain"
	"github.com/c-init/c-init/internal/ui"
	"github.com/c-init/c-init/pkg/models"
)

// Generated directory layout, relative to the project root.
const (
	DirSource   = "src"
	DirInclude  = "include"
	DirTarget   = "target"
	DirTests    = "tests"
	DirTestDeps = "tests/test-deps"
)

// Generated files, relative to the project root.
const (
	FileMain       = "src/main.c"
	FileTestHeader = "tests/test-deps/acutest.h"
	FileTestBasic  = "tests/test_basic.c"
	FileMakefile   = "Makefile"
	FileFlags      = "compile_flags.txt"
	FileTestFlags  = "tests/compile_flags.txt"
	FileClangTidy  = ".clang-tidy"
	FileReadme     = "README.md"
	FileGitignore  = ".gitignore"
)

// gitignoreContent keeps build output out of version control.
const gitignoreContent = "target/\n"

// initialCommitMessage is the message of the first commit.
const initialCommitMessage = "init"

// SanitizerWarning is reported for gcc on macOS.
const SanitizerWarning = "Sanitizers may fail with GCC on macOS (ASan runtime missing). Prefer clang for 'make sanitize'."

// Result summarizes a scaffold run.
type Result struct {
	Config         models.Config // Resolved configuration.
	Root           string        // Absolute project directory.
	Invocation     string        // Compiler command written to the Makefile.
	CreatedDirs    []string      // Directories created, relative to Root.
	CreatedFiles   []string      // Files written, relative to Root.
	GitInitialized bool          // Whether git init succeeded.
	Committed      bool          // Whether the initial commit succeeded.
	Warnings       []string      // Non-fatal warnings.
}

// Planner orchestrates configuration resolution and file generation.
// All filesystem access goes through an afero.Fs.
type Planner struct {
	fs       afero.Fs
	input    ui.InputSource
	defaults *config.Defaults
	git      git.Runner
	assets   fs.FS
	renderer template.Renderer
	chdir    func(string) error
	getwd    func() (string, error)
	lookPath toolchain.LookPathFunc
	platform string
	logger   *slog.Logger
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) PlannerOption {
	return func(p *Planner) { p.fs = fsys }
}

// WithInput sets the wizard input source.
func WithInput(input ui.InputSource) PlannerOption {
	return func(p *Planner) { p.input = input }
}

// WithDefaults sets the default tier of the precedence chain.
func WithDefaults(d *config.Defaults) PlannerOption {
	return func(p *Planner) { p.defaults = d }
}

// WithGitRunner sets the git runner.
func WithGitRunner(r git.Runner) PlannerOption {
	return func(p *Planner) { p.git = r }
}

// WithAssets sets the asset filesystem used for templates and verbatim copies.
func WithAssets(fsys fs.FS) PlannerOption {
	return func(p *Planner) { p.assets = fsys }
}

// WithWorkdir sets the functions used to read and change the working
// directory.
func WithWorkdir(getwd func() (string, error), chdir func(string) error) PlannerOption {
	return func(p *Planner) {
		p.getwd = getwd
		p.chdir = chdir
	}
}

// WithPlatform sets the host platform and executable lookup used to pick
// the compiler invocation name.
func WithPlatform(platform string, lookPath toolchain.LookPathFunc) PlannerOption {
	return func(p *Planner) {
		p.platform = platform
		p.lookPath = lookPath
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) PlannerOption {
	return func(p *Planner) { p.logger = logger }
}

// NewPlanner creates a Planner. Unset collaborators default to the real
// OS filesystem, working directory, git binary and embedded assets.
func NewPlanner(opts ...PlannerOption) (*Planner, error) {
	p := &Planner{
		chdir:    os.Chdir,
		getwd:    os.Getwd,
		platform: runtime.GOOS,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.git == nil {
		p.git = git.NewRunner(p.logger)
	}
	if p.assets == nil {
		assets, err := template.Assets()
		if err != nil {
			return nil, err
		}
		p.assets = assets
	}
	p.renderer = template.NewRenderer(p.assets)
	return p, nil
}

// Scaffold resolves the configuration from opts and generates the project.
func (p *Planner) Scaffold(ctx context.Context, opts Options) (*Result, error) {
	r := NewResolver(p.fs, p.input, p.defaults, p.logger)
	r.getwd = p.getwd
	cfg, err := r.Resolve(opts)
	if err != nil {
		return nil, err
	}
	return p.Generate(ctx, cfg)
}

// Generate writes the project described by cfg. Every step except the git
// commit is fatal; files already written are left in place.
func (p *Planner) Generate(ctx context.Context, cfg models.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Path == "" {
		cfg.Path = CurrentDir
	}

	cwd, err := p.getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	root := cfg.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}

	p.logger.Info("scaffolding project", "name", cfg.Name, "root", root,
		"compiler", cfg.Compiler, "strictness", cfg.Strictness)

	if filepath.Clean(cfg.Path) != CurrentDir {
		if err := p.fs.MkdirAll(root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", cfg.Path, err)
		}
	}

	nonEmpty, err := isNonEmptyDir(p.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.Path, err)
	}
	if nonEmpty && !cfg.Force {
		return nil, &NotEmptyError{Path: cfg.Path}
	}

	// The working directory changes exactly once; all later writes are
	// relative to root.
	if err := p.chdir(root); err != nil {
		return nil, fmt.Errorf("failed to enter %s: %w", cfg.Path, err)
	}
	w := &writer{fs: afero.NewBasePathFs(p.fs, root)}

	invocation := toolchain.InvocationName(cfg.Compiler, p.platform, p.lookPath)
	result := &Result{Config: cfg, Root: root, Invocation: invocation}

	dirs := []string{DirSource, DirInclude, DirTarget}
	if cfg.WithTests() {
		dirs = append(dirs, DirTests, DirTestDeps)
	}
	for _, dir := range dirs {
		if err := w.mkdir(dir); err != nil {
			return nil, err
		}
	}

	tctx := template.NewTemplateContext(
		template.WithProject(cfg.Name),
		template.WithCompiler(invocation),
		template.WithTests(cfg.WithTests()),
	)

	if err := p.writeFiles(w, cfg, tctx); err != nil {
		return nil, err
	}

	if err := p.initGit(ctx, w, cfg, result); err != nil {
		return nil, err
	}

	result.CreatedDirs = w.dirs
	result.CreatedFiles = w.files
	if toolchain.SanitizersUnreliable(p.platform, invocation) {
		result.Warnings = append(result.Warnings, SanitizerWarning)
	}

	p.logger.Info("project scaffolded", "root", root,
		"files", len(result.CreatedFiles), "git", result.GitInitialized)
	return result, nil
}

// writeFiles materializes every generated file in a fixed order.
func (p *Planner) writeFiles(w *writer, cfg models.Config, tctx *template.TemplateContext) error {
	if !cfg.NoHello {
		if err := p.render(w, FileMain, template.MainTemplate, tctx); err != nil {
			return err
		}
	}

	if cfg.WithTests() {
		if err := p.copyAsset(w, FileTestHeader, template.TestHeaderAsset); err != nil {
			return err
		}
		if err := p.copyAsset(w, FileTestBasic, template.TestBasicAsset); err != nil {
			return err
		}
	}

	if err := p.render(w, FileMakefile, template.MakefileTemplate, tctx); err != nil {
		return err
	}

	flags := toolchain.Compose(cfg.Compiler, cfg.Strictness)
	if err := w.write(FileFlags, []byte(flags)); err != nil {
		return err
	}
	if cfg.WithTests() {
		if err := w.write(FileTestFlags, []byte(toolchain.TestFlags(flags))); err != nil {
			return err
		}
	}

	if err := p.copyAsset(w, FileClangTidy, template.ClangTidyAsset(cfg.LinterStrictness)); err != nil {
		return err
	}

	return p.render(w, FileReadme, template.ReadmeTemplate, tctx)
}

// initGit creates the repository unless disabled or already present.
// Only the .gitignore write can fail the run.
func (p *Planner) initGit(ctx context.Context, w *writer, cfg models.Config, result *Result) error {
	if cfg.NoGit {
		return nil
	}
	if exists, _ := afero.Exists(w.fs, ".git"); exists {
		p.logger.Debug("git repository already present, skipping init")
		return nil
	}

	if err := p.git.Init(ctx, result.Root); err != nil {
		p.logger.Warn("git init failed", "error", err)
		return nil
	}
	result.GitInitialized = true

	if err := w.write(FileGitignore, []byte(gitignoreContent)); err != nil {
		return err
	}
	if cfg.NoCommit {
		return nil
	}

	if err := p.git.AddAll(ctx, result.Root); err != nil {
		p.logger.Warn("git add failed", "error", err)
	}
	if err := p.git.Commit(ctx, result.Root, initialCommitMessage); err != nil {
		p.logger.Warn("git commit failed", "error", err)
		return nil
	}
	result.Committed = true
	return nil
}

func (p *Planner) render(w *writer, dest, name string, tctx *template.TemplateContext) error {
	data, err := p.renderer.Render(name, tctx)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return w.write(dest, data)
}

func (p *Planner) copyAsset(w *writer, dest, name string) error {
	data, err := template.ExtractAsset(p.assets, name)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return w.write(dest, data)
}

// writer records what it creates under the project root.
type writer struct {
	fs    afero.Fs
	dirs  []string
	files []string
}

func (w *writer) mkdir(dir string) error {
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	w.dirs = append(w.dirs, dir)
	return nil
}

func (w *writer) write(name string, data []byte) error {
	if parent := filepath.Dir(name); parent != "." {
		if err := w.fs.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := afero.WriteFile(w.fs, name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	w.files = append(w.files, name)
	return nil
}
