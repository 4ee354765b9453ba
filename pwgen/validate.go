package pwgen

import (
	"strconv"
	"strings"
)

// ValidateLength checks that `length` lies in [numClasses, maxLength], so
// that every active class can contribute at least one character.
func ValidateLength(length, numClasses, maxLength int) (int, error) {
	if length < numClasses || length > maxLength {
		return 0, &LengthError{Given: length, Min: numClasses, Max: maxLength}
	}
	return length, nil
}

// ParseLength converts user input into a length and validates it with
// ValidateLength.
func ParseLength(s string, numClasses, maxLength int) (int, error) {
	length, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrLengthNotNumeric
	}
	return ValidateLength(length, numClasses, maxLength)
}

// ValidateSpecials checks that `custom` is a nonempty subset of `alphabet`
// and returns it with duplicate characters removed.
func ValidateSpecials(custom, alphabet string) (string, error) {
	if custom == "" {
		return "", ErrEmptySpecialSet
	}
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, r := range custom {
		if !strings.ContainsRune(alphabet, r) {
			return "", &SpecialsError{Given: custom, Allowed: alphabet}
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}
	return b.String(), nil
}
