//go:build unit

package codes_test

import (
	"strings"
	"testing"

	"courtbook/internal/pkg/codes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("generates code of requested length", func(t *testing.T) {
		code, err := codes.New(10)
		require.NoError(t, err)
		assert.Len(t, code, 10)
	})

	t.Run("uses only the shareable alphabet", func(t *testing.T) {
		const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
		for range 50 {
			code, err := codes.New(16)
			require.NoError(t, err)
			for _, r := range code {
				assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q in %s", r, code)
			}
		}
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		_, err := codes.New(0)
		assert.ErrorIs(t, err, codes.ErrInvalidLength)

		_, err = codes.New(-3)
		assert.ErrorIs(t, err, codes.ErrInvalidLength)
	})

	t.Run("consecutive codes differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 20 {
			code, err := codes.New(12)
			require.NoError(t, err)
			assert.False(t, seen[code], "duplicate code %s", code)
			seen[code] = true
		}
	})
}
