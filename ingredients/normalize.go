package ingredients

import (
	"strings"
	"unicode"
)

// NormalizeName trims, lowercases and capitalizes an ingredient name:
// "  SALMON  " becomes "Salmon". Idempotent, safe for non-Latin scripts.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// NormalizeUnit trims and lowercases a measurement unit.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
