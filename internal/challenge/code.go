package challenge

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateCode produces a numeric one-time code of the given length.
func generateCode(length int) (string, error) {
	digits := make([]byte, length)

	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generating code digit: %w", err)
		}

		digits[i] = '0' + byte(n.Int64())
	}

	return string(digits), nil
}
