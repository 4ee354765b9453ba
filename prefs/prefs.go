// Package prefs holds the generation settings chosen in an interactive
// session. Setters validate their input and leave the preferences untouched
// on failure.
package prefs

import (
	"github.com/avahowell/passwdgen/pwgen"
)

// Preferences is the mutable state behind the interactive surfaces. It is
// not safe for concurrent use.
type Preferences struct {
	defaults   pwgen.Defaults
	length     int
	noSpecials bool
	specials   string
}

// New creates preferences seeded from `d`.
func New(d pwgen.Defaults) *Preferences {
	return &Preferences{
		defaults: d,
		length:   d.Length,
	}
}

// Length returns the stored password length.
func (p *Preferences) Length() int { return p.length }

// NoSpecials reports whether special characters are disabled.
func (p *Preferences) NoSpecials() bool { return p.noSpecials }

// Specials returns the special character override, or "" when the default
// alphabet is in use.
func (p *Preferences) Specials() string { return p.specials }

// Defaults returns the defaults the preferences were created from.
func (p *Preferences) Defaults() pwgen.Defaults { return p.defaults }

// ActiveSpecials returns the special characters the next password will draw
// from, or "" when specials are disabled.
func (p *Preferences) ActiveSpecials() string {
	if p.noSpecials {
		return ""
	}
	if p.specials != "" {
		return p.specials
	}
	return p.defaults.Specials
}

// SetLength parses and validates `s` against the current specials setting.
func (p *Preferences) SetLength(s string) error {
	length, err := pwgen.ParseLength(s, pwgen.MinLength(p.noSpecials), p.defaults.MaxLength)
	if err != nil {
		return err
	}
	p.length = length
	return nil
}

// SetSpecials validates and stores a special character override.
func (p *Preferences) SetSpecials(s string) error {
	specials, err := pwgen.ValidateSpecials(s, p.defaults.Specials)
	if err != nil {
		return err
	}
	p.specials = specials
	return nil
}

// UseDefaultSpecials drops any special character override.
func (p *Preferences) UseDefaultSpecials() {
	p.specials = ""
}

// ToggleSpecials flips whether special characters are used and returns the
// new NoSpecials state.
func (p *Preferences) ToggleSpecials() bool {
	p.noSpecials = !p.noSpecials
	return p.noSpecials
}

// Config builds a generation request from the preferences. The override is
// kept while specials are disabled but not sent, so re-enabling specials
// restores it.
func (p *Preferences) Config() pwgen.Config {
	cfg := pwgen.Config{
		Length:     p.length,
		NoSpecials: p.noSpecials,
	}
	if !p.noSpecials {
		cfg.Specials = p.specials
	}
	return cfg
}
