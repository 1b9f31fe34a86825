package config

import "github.com/c-init/c-init/pkg/models"

// Built-in default values.
const (
	DefaultCompiler   = models.CompilerClang
	DefaultStrictness = models.StrictnessStrict
	DefaultColor      = models.ColorAuto
)

// Config file location under the XDG config home.
const (
	AppDir   = "c-init"
	FileName = "config.yaml"
)

// NewDefaults returns the built-in defaults.
func NewDefaults() *Defaults {
	return &Defaults{
		Compiler:   DefaultCompiler,
		Strictness: DefaultStrictness,
		Color:      DefaultColor,
	}
}
