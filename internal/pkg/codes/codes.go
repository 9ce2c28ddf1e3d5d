// Package codes generates the human-shareable codes attached to QR
// issuances and guest invitations.
package codes

import (
	"crypto/rand"

	"courtbook/internal/pkg/errs"
)

// Ambiguous characters (0/O, 1/I/L) are excluded so codes survive being
// read aloud or typed from a printed QR card.
const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

var ErrInvalidLength = errs.New("code length must be positive")

// New returns a random code of n characters from the shareable alphabet.
func New(n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes for code")
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
