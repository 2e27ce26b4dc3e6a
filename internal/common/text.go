package common

import "strings"

const ellipsis = "…"

// TruncateRunes trims value and cuts it to at most maxRunes runes, marking a
// cut with a trailing ellipsis that counts toward the limit.
func TruncateRunes(value string, maxRunes int) string {
	trimmed := strings.TrimSpace(value)
	if maxRunes <= 0 {
		return trimmed
	}

	runes := []rune(trimmed)
	if len(runes) <= maxRunes {
		return trimmed
	}
	if maxRunes == 1 {
		return ellipsis
	}
	return strings.TrimSpace(string(runes[:maxRunes-1])) + ellipsis
}
