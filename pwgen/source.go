package pwgen

import (
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand"
)

var errBadBound = errors.New("random bound must be greater than zero")

// Source draws uniform random integers. Implementations need not be safe for
// concurrent use.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is the default Source.
type CryptoSource struct{}

// Intn implements Source.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errBadBound
	}
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(i.Int64()), nil
}

type seededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic, non-cryptographic Source. Two
// sources created with the same seed produce the same sequence.
func NewSeededSource(seed int64) Source {
	return &seededSource{r: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errBadBound
	}
	return s.r.Intn(n), nil
}

// between returns a uniform integer in [lo, hi].
func between(src Source, lo, hi int) (int, error) {
	n, err := src.Intn(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + n, nil
}
