package config

import "github.com/c-init/c-init/pkg/models"

// Defaults holds the default tier of the precedence chain. Zero values are
// filled from the built-in defaults.
type Defaults struct {
	Compiler   models.Compiler   `yaml:"compiler"`
	Strictness models.Strictness `yaml:"strictness"`

	// LinterStrictness left empty follows Strictness.
	LinterStrictness models.Strictness `yaml:"linter_strictness"`

	Color models.ColorMode `yaml:"color"`

	NoGit    bool `yaml:"no_git"`
	NoCommit bool `yaml:"no_commit"`
	NoHello  bool `yaml:"no_hello"`
	NoTests  bool `yaml:"no_tests"`
}

// LinterOrDefault returns the linter tier, or nil when it follows the
// compiler strictness.
func (d *Defaults) LinterOrDefault() *models.Strictness {
	if d.LinterStrictness == "" {
		return nil
	}
	s := d.LinterStrictness
	return &s
}
