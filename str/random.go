package str

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidLength is returned by [Random] when length is negative.
var ErrInvalidLength = errors.New("str: length must not be negative")

// Random returns a hex-encoded string of length cryptographically random
// bytes, i.e. 2*length characters. The process-wide randomness source is
// used; there is no reseeding.
func Random(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("str: reading randomness: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
