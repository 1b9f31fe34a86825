package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/c-init/c-init/pkg/models"
)

func TestRendererRender(t *testing.T) {
	fsys := fstest.MapFS{
		MakefileTemplate: &fstest.MapFile{Data: []byte(sampleMakefile)},
		ReadmeTemplate:   &fstest.MapFile{Data: []byte("# {PROJECT_NAME}\n")},
		"broken.txt":     &fstest.MapFile{Data: []byte("# TEST_SECTION_BEGIN\nbody\n# TEST_SECTION_END\n")},
	}
	r := NewRenderer(fsys)

	t.Run("makefile with tests", func(t *testing.T) {
		ctx := NewTemplateContext(WithProject("My App"), WithCompiler("gcc-14"), WithTests(true))
		out, err := r.Render(MakefileTemplate, ctx)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		got := string(out)
		if !strings.HasPrefix(got, "CC := gcc-14\nNAME := my_app\n") {
			t.Errorf("markers not substituted:\n%s", got)
		}
		if !strings.Contains(got, ".PHONY: all run release run-release test sanitize fmt lint clean") {
			t.Error("phony list should include test")
		}
		if !strings.Contains(got, "./run-tests") {
			t.Error("test block body should be kept")
		}
	})

	t.Run("makefile without tests", func(t *testing.T) {
		ctx := NewTemplateContext(WithProject("demo"), WithTests(false))
		out, err := r.Render(MakefileTemplate, ctx)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		got := string(out)
		if strings.Contains(got, " test ") || strings.Contains(got, "run-tests") {
			t.Errorf("test target should be absent:\n%s", got)
		}
		if !strings.Contains(got, "sanitize:\n\t@$(MAKE) SANITIZE=1 MODE=debug all") {
			t.Error("fallback sanitize target missing")
		}
	})

	t.Run("readme", func(t *testing.T) {
		out, err := r.Render(ReadmeTemplate, NewTemplateContext(WithProject("My App")))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(out) != "# My App\n" {
			t.Errorf("Render() = %q", out)
		}
	})

	t.Run("block only applies to makefile", func(t *testing.T) {
		out, err := r.Render("broken.txt", NewTemplateContext(WithTests(false)))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(out), BlockBegin) {
			t.Error("non-Makefile assets should keep block markers")
		}
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := r.Render("nope", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}

func TestRendererRender_UnexpandedMarker(t *testing.T) {
	fsys := fstest.MapFS{
		MakefileTemplate: &fstest.MapFile{Data: []byte("CC := {CC}\n")},
		"unknown.txt":    &fstest.MapFile{Data: []byte("# {PROJECT_NAME} {VERSION}\n")},
	}
	r := NewRenderer(fsys)

	tests := []struct {
		name  string
		asset string
		ctx   *TemplateContext
	}{
		{"unknown marker", "unknown.txt", NewTemplateContext()},
		{"marker without value", MakefileTemplate, &TemplateContext{ProjectName: "demo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.asset, tt.ctx)
			if !errors.Is(err, ErrUnexpandedToken) {
				t.Errorf("expected ErrUnexpandedToken, got %v", err)
			}
		})
	}
}

func TestRendererRender_MarkerShapedNames(t *testing.T) {
	fsys, err := Assets()
	if err != nil {
		t.Fatalf("Assets() error: %v", err)
	}
	r := NewRenderer(fsys)

	for _, name := range []string{"lib{NAME}", "{CC}", "{PROJECT_NAME} v2"} {
		ctx := NewTemplateContext(WithProject(name))
		for _, asset := range []string{ReadmeTemplate, MainTemplate, MakefileTemplate} {
			out, err := r.Render(asset, ctx)
			if err != nil {
				t.Fatalf("Render(%s, %q) error: %v", asset, name, err)
			}
			want := name
			if asset == MakefileTemplate {
				want = "NAME := " + NormalizeName(name) + "\n"
			}
			if !strings.Contains(string(out), want) {
				t.Errorf("Render(%s, %q) missing %q:\n%s", asset, name, want, out)
			}
		}
	}
}

func TestEmbeddedAssets(t *testing.T) {
	fsys, err := Assets()
	if err != nil {
		t.Fatalf("Assets() error: %v", err)
	}

	names := []string{MakefileTemplate, ReadmeTemplate, MainTemplate, TestBasicAsset, TestHeaderAsset}
	for _, s := range models.ValidStrictness() {
		names = append(names, ClangTidyAsset(s))
	}
	for _, name := range names {
		if _, err := ExtractAsset(fsys, name); err != nil {
			t.Errorf("embedded asset %s: %v", name, err)
		}
	}

	makefile, _ := ExtractAsset(fsys, MakefileTemplate)
	text := string(makefile)
	for _, marker := range []string{MarkerCompiler, MarkerName, MarkerPhony, BlockBegin, BlockEnd} {
		if !strings.Contains(text, marker) {
			t.Errorf("Makefile template missing %s", marker)
		}
	}
}

func TestEmbeddedMakefile_RendersBothWays(t *testing.T) {
	fsys, err := Assets()
	if err != nil {
		t.Fatalf("Assets() error: %v", err)
	}
	r := NewRenderer(fsys)

	for _, withTests := range []bool{true, false} {
		out, err := r.Render(MakefileTemplate, NewTemplateContext(WithProject("demo"), WithTests(withTests)))
		if err != nil {
			t.Fatalf("Render(withTests=%v) error: %v", withTests, err)
		}
		got := string(out)
		if strings.Contains(got, BlockBegin) || strings.Contains(got, BlockEnd) {
			t.Errorf("withTests=%v: marker lines remain", withTests)
		}
		if strings.Contains(got, "\ntest:") != withTests {
			t.Errorf("withTests=%v: unexpected presence of test target", withTests)
		}
		if !strings.Contains(got, "\nsanitize:") {
			t.Errorf("withTests=%v: sanitize target missing", withTests)
		}
	}
}

func TestClangTidyAsset(t *testing.T) {
	tests := []struct {
		s    models.Strictness
		want string
	}{
		{models.StrictnessLoose, "clang-tidy-loose.yaml"},
		{models.StrictnessStrict, "clang-tidy-strict.yaml"},
		{models.StrictnessStrictest, "clang-tidy-strictest.yaml"},
		{models.Strictness(""), "clang-tidy-strict.yaml"},
	}
	for _, tt := range tests {
		if got := ClangTidyAsset(tt.s); got != tt.want {
			t.Errorf("ClangTidyAsset(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
