package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRandomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := RandomCode(4)
		assert.Len(t, code, 4)
		for _, ch := range code {
			assert.Contains(t, codeAlphabet, string(ch))
		}
		seen[code] = true
	}
	// 32^4 combinations; 100 draws colliding down to a handful would mean
	// the generator is broken.
	assert.Greater(t, len(seen), 90)

	assert.NotContains(t, codeAlphabet, "O")
	assert.NotContains(t, codeAlphabet, "0")
	assert.NotContains(t, codeAlphabet, "I")
	assert.NotContains(t, codeAlphabet, "1")
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID(uuid.NewString()))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID(strings.Repeat("g", 36)))
}
