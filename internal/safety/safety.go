package safety

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrEmpty     = errors.New("cannot be empty")
	ErrTooLong   = errors.New("exceeds max length")
	ErrProfanity = errors.New("failed profanity check")
	ErrLink      = errors.New("must not contain links")
	ErrControl   = errors.New("contains control characters")
)

var (
	profanityPattern = regexp.MustCompile(`(?i)\b(fuck|shit|bitch|asshole|dick)\b`)
	linkPattern      = regexp.MustCompile(`(?i)https?://|www\.`)
)

// ValidateTopic checks a user-supplied mission topic. Topics are interpolated
// into generated text, so links are not allowed at all.
func ValidateTopic(topic string, maxLen int) error {
	if err := validate(topic, maxLen); err != nil {
		return fmt.Errorf("topic %w", err)
	}
	return nil
}

func validate(value string, maxLen int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ErrEmpty
	}
	if maxLen > 0 && len([]rune(trimmed)) > maxLen {
		return ErrTooLong
	}
	if strings.IndexFunc(trimmed, unicode.IsControl) >= 0 {
		return ErrControl
	}
	if profanityPattern.MatchString(trimmed) {
		return ErrProfanity
	}
	if linkPattern.MatchString(trimmed) {
		return ErrLink
	}
	return nil
}
