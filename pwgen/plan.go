package pwgen

import (
	"fmt"
	"math"
)

// Plan decides how many characters each of `numClasses` classes contributes
// to a password of `length` characters. Every class starts from a random
// count in [take-swing, take+swing], where take is the even share and swing
// half of it; the counts are then nudged one at a time (largest first when
// over, smallest first when under) until they sum to exactly `length`.
func Plan(length, numClasses int, src Source) ([]int, error) {
	if numClasses < 1 || length < numClasses {
		return nil, ErrInfeasibleAllocation
	}

	take := int(math.RoundToEven(float64(length) / float64(numClasses)))
	swing := int(math.RoundToEven(float64(take) / 2))

	counts := make([]int, numClasses)
	sum := 0
	for i := range counts {
		n, err := between(src, take-swing, take+swing)
		if err != nil {
			return nil, err
		}
		counts[i] = n
		sum += n
	}

	for sum != length {
		if sum > length {
			counts[indexOfMax(counts)]--
			sum--
		} else {
			counts[indexOfMin(counts)]++
			sum++
		}
	}

	for i, n := range counts {
		if n < 1 {
			return nil, fmt.Errorf("allocation left class %v empty (length %v, %v classes)", i, length, numClasses)
		}
	}
	return counts, nil
}

// indexOfMax returns the index of the first largest element.
func indexOfMax(s []int) int {
	idx := 0
	for i, n := range s {
		if n > s[idx] {
			idx = i
		}
	}
	return idx
}

// indexOfMin returns the index of the first smallest element.
func indexOfMin(s []int) int {
	idx := 0
	for i, n := range s {
		if n < s[idx] {
			idx = i
		}
	}
	return idx
}
