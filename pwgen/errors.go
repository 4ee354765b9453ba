package pwgen

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthOutOfRange is matched by every *LengthError.
	ErrLengthOutOfRange = errors.New("password length out of range")

	// ErrLengthNotNumeric is returned from ParseLength when the input is not
	// an integer.
	ErrLengthNotNumeric = errors.New("password length must be an integer")

	// ErrEmptySpecialSet is returned from ValidateSpecials when the override
	// set is empty.
	ErrEmptySpecialSet = errors.New("special characters must be a nonempty set")

	// ErrSpecialSetNotSubset is matched by every *SpecialsError.
	ErrSpecialSetNotSubset = errors.New("special characters must be a subset of the default specials")

	// ErrMutuallyExclusiveOptions is returned from Generate when specials are
	// disabled and an override set is supplied at the same time.
	ErrMutuallyExclusiveOptions = errors.New("disabling special characters and overriding them are mutually exclusive")

	// ErrInfeasibleAllocation is returned from Plan when there are fewer
	// characters to allocate than classes to allocate them to.
	ErrInfeasibleAllocation = errors.New("password length is smaller than the number of character classes")
)

// LengthError reports a requested length outside [Min, Max].
type LengthError struct {
	Given int
	Min   int
	Max   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length %v: must be between %v and %v", e.Given, e.Min, e.Max)
}

// Is makes errors.Is(err, ErrLengthOutOfRange) hold.
func (e *LengthError) Is(target error) bool {
	return target == ErrLengthOutOfRange
}

// SpecialsError reports an override set containing characters outside the
// allowed alphabet.
type SpecialsError struct {
	Given   string
	Allowed string
}

func (e *SpecialsError) Error() string {
	return fmt.Sprintf("invalid special characters [%v]: must be drawn from [%v]", e.Given, e.Allowed)
}

// Is makes errors.Is(err, ErrSpecialSetNotSubset) hold.
func (e *SpecialsError) Is(target error) bool {
	return target == ErrSpecialSetNotSubset
}
