package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Loader reads the user defaults file.
type Loader struct {
	logger *slog.Logger
	search func(relPath string) (string, error)
}

// NewLoader creates a Loader that searches the XDG config directories.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger, search: xdg.SearchConfigFile}
}

// Load reads defaults from path, or from the XDG location when path is
// empty, and overlays them on the built-in defaults. A missing XDG file is
// not an error; a missing explicit path is.
func (l *Loader) Load(path string) (*Defaults, error) {
	explicit := path != ""
	if !explicit {
		found, err := l.search(filepath.Join(AppDir, FileName))
		if err != nil {
			l.logger.Debug("no user defaults file, using built-in defaults")
			return NewDefaults(), nil
		}
		path = found
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	d, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("user defaults loaded", "path", path,
		"compiler", d.Compiler, "strictness", d.Strictness)
	return d, nil
}

// parse decodes YAML defaults, fills unset fields from the built-ins and
// validates the result.
func parse(data []byte) (*Defaults, error) {
	d := &Defaults{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := mergo.Merge(d, NewDefaults()); err != nil {
		return nil, fmt.Errorf("merge built-in defaults: %w", err)
	}
	if err := Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}
