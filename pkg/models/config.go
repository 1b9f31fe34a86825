package models

import (
	"fmt"
	"slices"
	"strings"
)

// Compiler identifies the toolchain family a project is generated for.
type Compiler string

const (
	CompilerClang Compiler = "clang"
	CompilerGCC   Compiler = "gcc"
)

// ValidCompilers returns all compilers in wizard order.
func ValidCompilers() []Compiler {
	return []Compiler{CompilerClang, CompilerGCC}
}

// IsValid checks if the compiler is a supported value.
func (c Compiler) IsValid() bool {
	return slices.Contains(ValidCompilers(), c)
}

// ParseCompiler converts a flag or config value into a Compiler.
func ParseCompiler(s string) (Compiler, error) {
	c := Compiler(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid compiler %q: must be one of: clang, gcc", s)
	}
	return c, nil
}

// Strictness is a warning rigor tier. Tiers are totally ordered.
type Strictness string

const (
	StrictnessLoose     Strictness = "loose"
	StrictnessStrict    Strictness = "strict"
	StrictnessStrictest Strictness = "strictest"
)

// ValidStrictness returns all tiers from least to most strict.
func ValidStrictness() []Strictness {
	return []Strictness{StrictnessLoose, StrictnessStrict, StrictnessStrictest}
}

// IsValid checks if the strictness is a known tier.
func (s Strictness) IsValid() bool {
	return slices.Contains(ValidStrictness(), s)
}

// Rank returns the position of the tier in the ordering, or -1 if unknown.
func (s Strictness) Rank() int {
	return slices.Index(ValidStrictness(), s)
}

// ParseStrictness converts a flag or config value into a Strictness.
func ParseStrictness(s string) (Strictness, error) {
	st := Strictness(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid strictness %q: must be one of: loose, strict, strictest", s)
	}
	return st, nil
}

// ColorMode controls ANSI styling of terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ValidColorModes returns all color modes.
func ValidColorModes() []ColorMode {
	return []ColorMode{ColorAuto, ColorAlways, ColorNever}
}

// IsValid checks if the color mode is a known value.
func (m ColorMode) IsValid() bool {
	return slices.Contains(ValidColorModes(), m)
}

// ParseColorMode converts a flag or config value into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid color mode %q: must be one of: auto, always, never", s)
	}
	return m, nil
}

// Config is the fully resolved project configuration.
type Config struct {
	Name             string     // Display name of the project.
	Path             string     // Target directory, "." for the current directory.
	Compiler         Compiler   // Selected toolchain family.
	Strictness       Strictness // Compiler warning tier.
	LinterStrictness Strictness // .clang-tidy tier.
	Color            ColorMode  // Terminal styling mode.

	NoGit    bool // Skip git init and .gitignore.
	NoCommit bool // Skip the initial commit.
	NoHello  bool // Skip src/main.c.
	NoTests  bool // Skip the tests directory and the test target.
	Force    bool // Allow scaffolding into a non-empty directory.
}

// WithTests reports whether the tests directory is generated.
func (c Config) WithTests() bool {
	return !c.NoTests
}
