package utils

import (
	"crypto/rand"
	"os"

	"github.com/google/uuid"
)

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsValidUUID reports whether u parses as a UUID.
func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomCode returns n random characters from an unambiguous uppercase
// alphabet (no O/0, I/1). Used for member code suffixes.
func RandomCode(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails if the OS entropy source is broken;
		// fall back to a fixed suffix rather than returning an error
		// from every caller.
		for i := range buf {
			buf[i] = 'X'
		}
		return string(buf)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
