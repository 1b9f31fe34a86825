package template

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/c-init/c-init/pkg/models"
)

//go:embed assets
var assetsFS embed.FS

// Asset names under the embedded assets directory.
const (
	MakefileTemplate = "Makefile"
	ReadmeTemplate   = "README.md"
	MainTemplate     = "main.c"
	TestBasicAsset   = "test_basic.c"
	TestHeaderAsset  = "acutest.h"
)

// Assets returns the embedded asset filesystem rooted at the assets
// directory.
func Assets() (fs.FS, error) {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("open embedded assets: %w", err)
	}
	return sub, nil
}

// ClangTidyAsset returns the .clang-tidy variant for a linter tier.
func ClangTidyAsset(s models.Strictness) string {
	if !s.IsValid() {
		s = models.StrictnessStrict
	}
	return "clang-tidy-" + string(s) + ".yaml"
}

// ExtractAsset returns the raw bytes of a verbatim asset.
func ExtractAsset(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return data, nil
}
