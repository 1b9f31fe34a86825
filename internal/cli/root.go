package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c-init/c-init/internal/config"
	"github.com/c-init/c-init/internal/core/project"
	"github.com/c-init/c-init/internal/ui"
	"github.com/c-init/c-init/pkg/models"
	"github.com/c-init/c-init/pkg/version"
)

// Flag names.
const (
	flagName             = "name"
	flagCC               = "cc"
	flagStrictness       = "strictness"
	flagLinterStrictness = "linter-strictness"
	flagColor            = "color"
	flagForce            = "force"
	flagNoGit            = "no-git"
	flagNoCommit         = "no-commit"
	flagNoHello          = "no-hello"
	flagNoTests          = "no-tests"
	flagInteractive      = "interactive"
	flagConfig           = "config"
	flagVerbose          = "verbose"
)

// app carries state shared between the command and Execute's error
// reporting.
type app struct {
	deps   *Dependencies
	styles *styles
}

// NewRootCmd builds the c-init command using the given dependencies.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	a := &app{deps: deps}
	return a.command()
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "c-init [path]",
		Short: "Scaffold a new C project",
		Long: `c-init creates a C project with a Makefile, compile_flags.txt for clangd,
a .clang-tidy configuration, an optional acutest test suite and a git repository.

Usage patterns:
  c-init                 Scaffold into the current directory
  c-init my-app          Create ./my-app/ and scaffold inside it
  c-init -i              Answer the setup questions interactively

Examples:
  c-init my-app --cc gcc -s strictest
  c-init . --force --no-tests
  printf 'my-app\n1\n2\n0\n1\n1\n' | c-init -i   Replay wizard answers from a pipe`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE:       validateFlags,
		RunE:          a.run,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("c-init %s\n", version.GetVersion()))
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(a.deps.Stdin)
	cmd.SetOut(a.deps.Stdout)
	cmd.SetErr(a.deps.Stderr)

	f := cmd.Flags()
	f.String(flagName, "", "Project name (defaults to directory name)")
	f.String(flagCC, "", "Compiler: clang | gcc (default: clang)")
	f.StringP(flagStrictness, "s", "", "Strictness: loose | strict | strictest (default: strict)")
	f.String(flagLinterStrictness, "", "Linter strictness: loose | strict | strictest (default: same as strictness)")
	f.String(flagColor, string(models.ColorAuto), "Color: auto | always | never")
	f.BoolP(flagForce, "f", false, "Allow non-empty directory")
	f.Bool(flagNoGit, false, "Skip git init and .gitignore")
	f.Bool(flagNoCommit, false, "Skip initial git commit")
	f.Bool(flagNoHello, false, "Skip generating src/main.c")
	f.Bool(flagNoTests, false, "Skip generating tests and vendoring acutest")
	f.BoolP(flagInteractive, "i", false, "Run interactive wizard")
	f.String(flagConfig, "", "User defaults file (default: $XDG_CONFIG_HOME/c-init/config.yaml)")
	f.BoolP(flagVerbose, "v", false, "Print debug logs to stderr")

	help := &cobra.Command{
		Use:   "help",
		Short: "Show help",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.SetHelpCommand(help)
	cmd.AddCommand(help)

	return cmd
}

// Execute runs c-init with the production dependencies. Errors are
// reported here; a non-nil return means exit status 1.
func Execute() error {
	deps := NewDependencies()
	a := &app{deps: deps}
	return a.execute(context.Background(), a.command())
}

func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	st := a.styles
	if st == nil {
		st = newStyles(a.deps.Stderr, models.ColorAuto, a.stdoutIsTerminal())
	}
	if errors.Is(err, project.ErrCancelled) {
		_, _ = fmt.Fprintln(a.deps.Stdout, "Exiting...")
		return err
	}
	st.printError(a.deps.Stderr, err)
	return err
}

func (a *app) stdoutIsTerminal() bool {
	return a.deps.StdoutIsTerminal != nil && a.deps.StdoutIsTerminal()
}

// validateFlags checks enum flag values before execution.
func validateFlags(cmd *cobra.Command, _ []string) error {
	if v := getStringFlag(cmd, flagCC); cmd.Flags().Changed(flagCC) {
		if _, err := models.ParseCompiler(v); err != nil {
			return fmt.Errorf("invalid --%s value: %w", flagCC, err)
		}
	}
	for _, name := range []string{flagStrictness, flagLinterStrictness} {
		if v := getStringFlag(cmd, name); cmd.Flags().Changed(name) {
			if _, err := models.ParseStrictness(v); err != nil {
				return fmt.Errorf("invalid --%s value: %w", name, err)
			}
		}
	}
	if _, err := models.ParseColorMode(getStringFlag(cmd, flagColor)); err != nil {
		return fmt.Errorf("invalid --%s value: %w", flagColor, err)
	}
	return nil
}

// run loads the user defaults, resolves the configuration and scaffolds
// the project.
func (a *app) run(cmd *cobra.Command, args []string) error {
	logger := newLogger(a.deps.Stderr, getBoolFlag(cmd, flagVerbose))
	logger.Debug("starting c-init", "version", version.GetFullVersion())

	defaults, err := config.NewLoader(logger).Load(getStringFlag(cmd, flagConfig))
	if err != nil {
		return err
	}

	opts := optionsFromFlags(cmd, args)
	color := defaults.Color
	if opts.Color != nil {
		color = *opts.Color
	}
	a.styles = newStyles(a.deps.Stderr, color, a.stdoutIsTerminal())
	out := newStyles(a.deps.Stdout, color, a.stdoutIsTerminal())

	var input ui.InputSource
	if opts.Interactive {
		_, _ = fmt.Fprintf(a.deps.Stdout, "%s\n\n", WizardBanner)
		input, err = ui.NewInputSource(a.deps.Stdin, a.deps.Stdout, a.deps.Headless,
			ui.WithHighlight(func(s string) string { return out.success.Render(s) }))
		if err != nil {
			return err
		}
	}

	planner, err := project.NewPlanner(
		project.WithFs(a.deps.Fs),
		project.WithInput(input),
		project.WithDefaults(defaults),
		project.WithGitRunner(a.deps.Git),
		project.WithWorkdir(a.deps.Getwd, a.deps.Chdir),
		project.WithPlatform(a.deps.Platform, a.deps.LookPath),
		project.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := planner.Scaffold(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Interactive {
		_, _ = fmt.Fprintln(a.deps.Stdout)
	}
	out.printSummary(a.deps.Stdout, result)
	for _, w := range result.Warnings {
		a.styles.printWarning(a.deps.Stderr, w)
	}
	logger.Debug("done", "root", result.Root, "git", result.GitInitialized)
	return nil
}

// optionsFromFlags converts the command line into resolver options. Only
// flags the user actually set are explicit; validateFlags has already
// rejected bad enum values.
func optionsFromFlags(cmd *cobra.Command, args []string) project.Options {
	opts := project.Options{
		Interactive: getBoolFlag(cmd, flagInteractive),
	}
	if len(args) > 0 {
		opts.Path = &args[0]
	}
	if cmd.Flags().Changed(flagName) {
		name := getStringFlag(cmd, flagName)
		opts.Name = &name
	}
	if cmd.Flags().Changed(flagCC) {
		c, _ := models.ParseCompiler(getStringFlag(cmd, flagCC))
		opts.Compiler = &c
	}
	if cmd.Flags().Changed(flagStrictness) {
		s, _ := models.ParseStrictness(getStringFlag(cmd, flagStrictness))
		opts.Strictness = &s
	}
	if cmd.Flags().Changed(flagLinterStrictness) {
		s, _ := models.ParseStrictness(getStringFlag(cmd, flagLinterStrictness))
		opts.LinterStrictness = &s
	}
	if cmd.Flags().Changed(flagColor) {
		m, _ := models.ParseColorMode(getStringFlag(cmd, flagColor))
		opts.Color = &m
	}
	opts.Force = changedBool(cmd, flagForce)
	opts.NoGit = changedBool(cmd, flagNoGit)
	opts.NoCommit = changedBool(cmd, flagNoCommit)
	opts.NoHello = changedBool(cmd, flagNoHello)
	opts.NoTests = changedBool(cmd, flagNoTests)
	return opts
}

// changedBool returns the flag value if it was given, nil otherwise.
func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v := getBoolFlag(cmd, name)
	return &v
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
