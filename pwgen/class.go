package pwgen

import (
	"errors"
	"strings"
)

const (
	// Lowercase contains the ASCII lowercase letters.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	// Uppercase contains the ASCII uppercase letters.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Digits contains the decimal digits.
	Digits = "0123456789"
	// Punctuation is the default special character alphabet: every ASCII
	// punctuation symbol.
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var errEmptyClass = errors.New("character class must contain at least one character")

// Class is an immutable, ordered set of distinct candidate characters.
type Class struct {
	Name  string
	chars []byte
}

// NewClass creates a Class named `name` from the characters in `chars`.
// Duplicate characters are dropped, keeping the first occurrence.
func NewClass(name string, chars string) (Class, error) {
	if chars == "" {
		return Class{}, errEmptyClass
	}
	seen := make(map[byte]bool, len(chars))
	var b []byte
	for i := 0; i < len(chars); i++ {
		if seen[chars[i]] {
			continue
		}
		seen[chars[i]] = true
		b = append(b, chars[i])
	}
	return Class{Name: name, chars: b}, nil
}

// mustClass is used for the fixed base classes, which are known to be valid.
func mustClass(name, chars string) Class {
	c, err := NewClass(name, chars)
	if err != nil {
		panic(err)
	}
	return c
}

// BaseClasses returns the classes every password draws from.
func BaseClasses() []Class {
	return []Class{
		mustClass("lowercase", Lowercase),
		mustClass("uppercase", Uppercase),
		mustClass("digits", Digits),
	}
}

// Len returns the number of candidate characters in the class.
func (c Class) Len() int {
	return len(c.chars)
}

// Contains reports whether ch is one of the class candidates.
func (c Class) Contains(ch byte) bool {
	return strings.IndexByte(string(c.chars), ch) >= 0
}

func (c Class) String() string {
	return string(c.chars)
}
