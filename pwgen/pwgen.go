// Package pwgen generates passwords with a balanced, randomized number of
// characters from each character class.
package pwgen

import (
	"github.com/jhunt/go-log"
)

const (
	// DefaultLength is the password length used when none is requested.
	DefaultLength = 64
	// MaxLength is the longest password that can be requested.
	MaxLength = 256
)

type (
	// Defaults holds the process-wide settings every generation is checked
	// against. It is built once at startup and never mutated.
	Defaults struct {
		Length    int
		MaxLength int
		Specials  string
	}

	// Config describes a single generation request. Callers fill Length,
	// usually from Defaults.Length. NoSpecials and a nonempty Specials are
	// mutually exclusive.
	Config struct {
		Length     int
		NoSpecials bool
		Specials   string
	}

	// Generator turns a Config into a password.
	Generator struct {
		Defaults Defaults
		Source   Source
	}
)

// StandardDefaults returns the built-in defaults: 64 characters, at most 256,
// drawing specials from all ASCII punctuation.
func StandardDefaults() Defaults {
	return Defaults{
		Length:    DefaultLength,
		MaxLength: MaxLength,
		Specials:  Punctuation,
	}
}

// MinLength returns the shortest valid password length for the given
// specials setting: one character per active class.
func MinLength(noSpecials bool) int {
	n := len(BaseClasses())
	if !noSpecials {
		n++
	}
	return n
}

// New returns a Generator drawing from crypto/rand.
func New(d Defaults) *Generator {
	return &Generator{
		Defaults: d,
		Source:   CryptoSource{},
	}
}

// Classes resolves the active character classes for `cfg`, validating any
// special character override.
func (g *Generator) Classes(cfg Config) ([]Class, error) {
	if cfg.NoSpecials && cfg.Specials != "" {
		return nil, ErrMutuallyExclusiveOptions
	}
	classes := BaseClasses()
	if cfg.NoSpecials {
		return classes, nil
	}
	specials := g.Defaults.Specials
	if cfg.Specials != "" {
		s, err := ValidateSpecials(cfg.Specials, g.Defaults.Specials)
		if err != nil {
			return nil, err
		}
		specials = s
	}
	c, err := NewClass("specials", specials)
	if err != nil {
		return nil, err
	}
	return append(classes, c), nil
}

// Generate validates `cfg` and returns a new password. Nothing is sampled
// unless validation succeeds.
func (g *Generator) Generate(cfg Config) (string, error) {
	log.Debugf("generate length=%v no_specials=%v specials='%v'", cfg.Length, cfg.NoSpecials, cfg.Specials)
	classes, err := g.Classes(cfg)
	if err != nil {
		return "", err
	}

	length, err := ValidateLength(cfg.Length, len(classes), g.Defaults.MaxLength)
	if err != nil {
		return "", err
	}

	src := g.Source
	if src == nil {
		src = CryptoSource{}
	}

	counts, err := Plan(length, len(classes), src)
	if err != nil {
		return "", err
	}

	chars := make([]byte, 0, length)
	for i, class := range classes {
		log.Debugf("adding %v chars from %v [%v]", counts[i], class.Name, class)
		sampled, err := Sample(class, counts[i], src)
		if err != nil {
			return "", err
		}
		chars = append(chars, sampled...)
	}
	log.Debugf("total %v chars", len(chars))

	if err := Shuffle(chars, src); err != nil {
		return "", err
	}
	return string(chars), nil
}
