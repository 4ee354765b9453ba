// Package config loads the process-wide password defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avahowell/passwdgen/pwgen"
)

// File is the on-disk layout of a passwdgen settings file. Omitted keys keep
// their built-in defaults.
type File struct {
	Length    int    `yaml:"length"`
	MaxLength int    `yaml:"max-length"`
	Specials  string `yaml:"specials"`
}

// Load reads the YAML settings file at `path` and returns the resulting
// defaults. An empty path returns pwgen.StandardDefaults().
func Load(path string) (pwgen.Defaults, error) {
	d := pwgen.StandardDefaults()
	if path == "" {
		return d, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return d, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	// an empty or comment-only file decodes as io.EOF
	var f File
	if err := yaml.NewDecoder(file).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return d, fmt.Errorf("failed to parse config %v: %w", path, err)
	}

	d, err = Validate(f.Apply(d))
	if err != nil {
		return d, fmt.Errorf("invalid config %v: %w", path, err)
	}
	return d, nil
}

// Apply overlays the keys set in f onto `d`.
func (f File) Apply(d pwgen.Defaults) pwgen.Defaults {
	if f.Length != 0 {
		d.Length = f.Length
	}
	if f.MaxLength != 0 {
		d.MaxLength = f.MaxLength
	}
	if f.Specials != "" {
		d.Specials = f.Specials
	}
	return d
}

// Validate checks that the defaults can generate a password with every
// class enabled, and returns them with duplicate specials removed.
func Validate(d pwgen.Defaults) (pwgen.Defaults, error) {
	min := pwgen.MinLength(false)
	if d.MaxLength < min {
		return d, fmt.Errorf("max-length must be at least %v, got %v", min, d.MaxLength)
	}
	if _, err := pwgen.ValidateLength(d.Length, min, d.MaxLength); err != nil {
		return d, fmt.Errorf("length: %w", err)
	}
	specials, err := pwgen.ValidateSpecials(d.Specials, pwgen.Punctuation)
	if err != nil {
		return d, fmt.Errorf("specials: %w", err)
	}
	d.Specials = specials
	return d, nil
}
