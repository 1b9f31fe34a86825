package template

import (
	"fmt"
	"io/fs"
	"regexp"
)

// markerPattern matches marker-shaped tokens in asset text.
var markerPattern = regexp.MustCompile(`\{[A-Z][A-Z_]*\}`)

// blockTemplates lists the assets carrying the optional test block.
var blockTemplates = map[string]bool{
	MakefileTemplate: true,
}

// Renderer renders text assets with marker substitution.
type Renderer interface {
	// Render reads the named asset, substitutes markers from ctx and, for
	// assets with an optional block, resolves it from ctx.WithTests.
	// Returns ErrTemplateNotFound, or ErrUnexpandedToken when the asset
	// holds a marker with no value.
	Render(name string, ctx *TemplateContext) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from Assets(); in tests use testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render implements Renderer.
func (r *renderer) Render(name string, ctx *TemplateContext) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if ctx == nil {
		ctx = NewTemplateContext()
	}

	subs := ctx.Substitutions()
	// Markers are checked on the asset, not the output, so values may
	// contain marker-shaped text.
	for _, marker := range markerPattern.FindAllString(string(content), -1) {
		if subs.Value(marker) == "" {
			return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, marker, name)
		}
	}

	var text string
	if blockTemplates[name] {
		text = Transform(string(content), subs, ctx.WithTests)
	} else {
		text = Substitute(string(content), subs)
	}
	return []byte(text), nil
}
