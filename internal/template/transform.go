package template

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Substitution markers recognised in template assets.
const (
	MarkerCompiler    = "{CC}"
	MarkerName        = "{NAME}"
	MarkerPhony       = "{PHONY}"
	MarkerProjectName = "{PROJECT_NAME}"
)

// Marker lines delimiting the optional test block in the Makefile.
const (
	BlockBegin = "# TEST_SECTION_BEGIN"
	BlockEnd   = "# TEST_SECTION_END"
)

// fallbackBlock replaces the test block when tests are not generated. It
// keeps a sanitize target that only builds the binary.
var fallbackBlock = []string{
	"sanitize:",
	"\t@$(MAKE) SANITIZE=1 MODE=debug all",
}

// Substitutions holds the values written in place of each marker.
type Substitutions struct {
	ProjectName    string // {PROJECT_NAME}: display name.
	Compiler       string // {CC}: compiler invocation name.
	NormalizedName string // {NAME}: lowercase, underscores for spaces.
	Phony          string // {PHONY}: space separated phony targets.
}

// Substitute replaces every marker occurrence in text.
func Substitute(text string, subs Substitutions) string {
	r := strings.NewReplacer(
		MarkerCompiler, subs.Compiler,
		MarkerName, subs.NormalizedName,
		MarkerPhony, subs.Phony,
		MarkerProjectName, subs.ProjectName,
	)
	return r.Replace(text)
}

// Value returns the substitution for marker, or "" for unknown markers.
func (s Substitutions) Value(marker string) string {
	switch marker {
	case MarkerCompiler:
		return s.Compiler
	case MarkerName:
		return s.NormalizedName
	case MarkerPhony:
		return s.Phony
	case MarkerProjectName:
		return s.ProjectName
	}
	return ""
}

// ApplyBlock resolves the optional block. With keep, the two marker lines
// are removed and the body stays. Without keep, the whole span including
// both markers becomes the fallback block. Text without a complete
// begin/end pair is returned unchanged.
func ApplyBlock(text string, keep bool) string {
	lines := strings.Split(text, "\n")
	begin := indexLine(lines, BlockBegin, 0)
	if begin < 0 {
		return text
	}
	end := indexLine(lines, BlockEnd, begin+1)
	if end < 0 {
		return text
	}

	out := make([]string, 0, len(lines))
	out = append(out, lines[:begin]...)
	if keep {
		out = append(out, lines[begin+1:end]...)
	} else {
		out = append(out, fallbackBlock...)
	}
	out = append(out, lines[end+1:]...)
	return strings.Join(out, "\n")
}

func indexLine(lines []string, marker string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == marker {
			return i
		}
	}
	return -1
}

// Transform applies substitution, then block handling.
func Transform(text string, subs Substitutions, keepBlock bool) string {
	return ApplyBlock(Substitute(text, subs), keepBlock)
}

// PhonyTargets returns the Makefile .PHONY list. The test target is only
// listed when tests are generated.
func PhonyTargets(withTests bool) string {
	targets := []string{"all", "run", "release", "run-release"}
	if withTests {
		targets = append(targets, "test")
	}
	targets = append(targets, "sanitize", "fmt", "lint", "clean")
	return strings.Join(targets, " ")
}

// NormalizeName turns a display name into the Makefile binary name.
func NormalizeName(name string) string {
	lower := cases.Lower(language.Und).String(norm.NFC.String(name))
	return strings.ReplaceAll(lower, " ", "_")
}
