package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
)

// RandomIntn returns a random integer in [0, n) from the shared math/rand source.
// Returns 0 when n <= 0.
func RandomIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// SecureRandomIntn returns a random integer in [0, n) using crypto/rand.
func SecureRandomIntn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("n must be positive, got %d", n)
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SecureIntn is SecureRandomIntn for callers that need the func(int) int shape.
// It falls back to math/rand if the system entropy source fails.
func SecureIntn(n int) int {
	v, err := SecureRandomIntn(n)
	if err != nil {
		return RandomIntn(n)
	}
	return v
}
