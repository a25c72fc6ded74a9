package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// PIILevel defines how much caller data reaches logs and spans.
type PIILevel string

const (
	// PIILevelNone redacts all caller content
	PIILevelNone PIILevel = "none"
	// PIILevelHashed hashes recognizable PII with a salt
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull performs no sanitization
	PIILevelFull PIILevel = "full"
)

const redacted = "[REDACTED]"

// Sanitizer scrubs caller identifiers, call metadata and credentials before
// they are logged or relayed.
type Sanitizer struct {
	level PIILevel
	salt  string

	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
	ipv4Pattern  *regexp.Regexp
	bearer       *regexp.Regexp
}

// NewSanitizer creates a sanitizer. Unknown levels behave like PIILevelHashed.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{
		level:        level,
		salt:         salt,
		emailPattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		phonePattern: regexp.MustCompile(`\+?\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		ipv4Pattern:  regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
		bearer:       regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/=-]+`),
	}
}

// SanitizeText sanitizes free-form caller text.
func (s *Sanitizer) SanitizeText(input string) string {
	switch s.level {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return input
	default:
		return s.hashPII(input)
	}
}

// SanitizeUserID sanitizes a caller identifier.
func (s *Sanitizer) SanitizeUserID(userID string) string {
	if userID == "" {
		return ""
	}

	switch s.level {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return userID
	default:
		return s.hash(userID)
	}
}

// SanitizeFields sanitizes string values of a metadata map for logging.
// Non-string values are kept only at PIILevelFull.
func (s *Sanitizer) SanitizeFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}

	result := make(map[string]any, len(fields))
	for k, v := range fields {
		if str, ok := v.(string); ok {
			result[k] = s.SanitizeText(str)
			continue
		}
		if s.level == PIILevelFull {
			result[k] = v
		} else {
			result[k] = redacted
		}
	}
	return result
}

// RedactSecrets removes every occurrence of the given secrets and any bearer
// credential from text. It applies regardless of level.
func (s *Sanitizer) RedactSecrets(text string, secrets ...string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		text = strings.ReplaceAll(text, secret, redacted)
	}
	return s.bearer.ReplaceAllString(text, "Bearer "+redacted)
}

func (s *Sanitizer) hashPII(input string) string {
	result := s.emailPattern.ReplaceAllStringFunc(input, func(match string) string {
		return fmt.Sprintf("[EMAIL:%s]", s.hash(match))
	})
	result = s.phonePattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[PHONE:%s]", s.hash(match))
	})
	result = s.ipv4Pattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[IP:%s]", s.hash(match))
	})
	return result
}

// hash returns the first 8 hex chars of a salted SHA-256.
func (s *Sanitizer) hash(data string) string {
	h := sha256.New()
	h.Write([]byte(data + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:8]
}
