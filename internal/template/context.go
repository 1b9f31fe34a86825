package template

// TemplateContext provides the values substituted into template assets.
type TemplateContext struct {
	ProjectName string // Display name, used in README and main.c.
	Compiler    string // Invocation name written to the Makefile.
	WithTests   bool   // Keeps the Makefile test block when true.
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with defaults, then applies
// any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		ProjectName: "project",
		Compiler:    "clang",
		WithTests:   true,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject sets the project display name. Empty names are ignored.
func WithProject(name string) ContextOption {
	return func(c *TemplateContext) {
		if name != "" {
			c.ProjectName = name
		}
	}
}

// WithCompiler sets the compiler invocation name. Empty names are ignored.
func WithCompiler(invocation string) ContextOption {
	return func(c *TemplateContext) {
		if invocation != "" {
			c.Compiler = invocation
		}
	}
}

// WithTests controls whether test targets are generated.
func WithTests(enabled bool) ContextOption {
	return func(c *TemplateContext) {
		c.WithTests = enabled
	}
}

// Substitutions derives the marker values for this context.
func (c *TemplateContext) Substitutions() Substitutions {
	return Substitutions{
		ProjectName:    c.ProjectName,
		Compiler:       c.Compiler,
		NormalizedName: NormalizeName(c.ProjectName),
		Phony:          PhonyTargets(c.WithTests),
	}
}
