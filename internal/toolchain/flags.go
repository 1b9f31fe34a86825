// Package toolchain composes compiler flag sets for generated projects and
// resolves the compiler invocation name recorded in the Makefile.
package toolchain

import (
	"strings"

	"github.com/samber/lo"

	"github.com/c-init/c-init/pkg/models"
)

var variants = map[models.Compiler]variantBlocks{
	models.CompilerClang: {
		systemIncludes: flagsClangSystemIncludes,
		strictExtra:    flagsClangStrictExtra,
		strictestExtra: flagsClangStrictestExtra,
	},
	models.CompilerGCC: {
		systemIncludes: flagsGCCSystemIncludes,
		strictExtra:    flagsGCCStrictExtra,
		strictestExtra: flagsGCCStrictestExtra,
	},
}

// tokens splits a block into its non-blank lines.
func tokens(block string) []string {
	lines := lo.Map(strings.Split(block, "\n"), func(l string, _ int) string {
		return strings.TrimSpace(l)
	})
	return lo.Compact(lines)
}

// concat appends the tokens of each block in order. Duplicates are kept.
func concat(base []string, blocks ...string) []string {
	out := append([]string(nil), base...)
	for _, b := range blocks {
		out = append(out, tokens(b)...)
	}
	return out
}

// Loose returns the loose tier: base flags plus system includes.
func Loose(c models.Compiler) []string {
	v := variants[c]
	return concat(nil, flagsLooseBase, v.systemIncludes)
}

// Strict returns the strict tier: loose plus the common and
// compiler-specific strict flags.
func Strict(c models.Compiler) []string {
	v := variants[c]
	return concat(Loose(c), flagsStrictCommon, v.strictExtra)
}

// Strictest returns the strictest tier: strict plus the common and
// compiler-specific strictest flags.
func Strictest(c models.Compiler) []string {
	v := variants[c]
	return concat(Strict(c), flagsStrictestCommon, v.strictestExtra)
}

// Tier returns the flag tokens for the given compiler and strictness.
// Unknown strictness values yield the strict tier.
func Tier(c models.Compiler, s models.Strictness) []string {
	switch s {
	case models.StrictnessLoose:
		return Loose(c)
	case models.StrictnessStrictest:
		return Strictest(c)
	default:
		return Strict(c)
	}
}

// Compose returns the compile_flags.txt content for the given compiler and
// strictness: one flag per line, no trailing newline.
func Compose(c models.Compiler, s models.Strictness) string {
	return strings.Join(Tier(c, s), "\n")
}

// TestFlags derives the tests/compile_flags.txt content by replacing the
// project include flag with the test include block. All other flags keep
// their position.
func TestFlags(flags string) string {
	return strings.ReplaceAll(flags, ProjectIncludeFlag, strings.Join(tokens(flagsTestInclude), "\n"))
}
