package strength

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// DefaultGenerateLength is used when a caller does not ask for a length.
const DefaultGenerateLength = 16

// The 94 printable ASCII characters: letters, digits, punctuation/symbols.
const generateAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var ErrInvalidLength = errors.New("password length must be positive")

// Generate returns a random password of exactly length characters, each drawn
// independently and uniformly from the 94-character alphabet. A non-positive
// length is rejected with ErrInvalidLength rather than clamped. The output
// carries no strength guarantee; callers wanting a guaranteed-strong password
// should re-check and regenerate.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	alphaLen := big.NewInt(int64(len(generateAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		b[i] = generateAlphabet[n.Int64()]
	}
	return string(b), nil
}
