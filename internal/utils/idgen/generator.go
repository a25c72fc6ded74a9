package idgen

import (
	"crypto/rand"
	"fmt"
)

const charset = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateSecureID returns "<prefix>_<length random chars from [0-9a-z]>".
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid id length: %d", length)
	}

	// Two bytes per char keeps the modulo bias low.
	bytes := make([]byte, length*2)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encoded := make([]byte, length)
	for i := 0; i < length; i++ {
		n := int(bytes[2*i])<<8 | int(bytes[2*i+1])
		encoded[i] = charset[n%len(charset)]
	}

	return fmt.Sprintf("%s_%s", prefix, string(encoded)), nil
}
