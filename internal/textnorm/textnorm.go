// Package textnorm collapses whitespace and caps description length,
// matching original_source/api/services/scraper.py's _normalize_text.
package textnorm

import "strings"

// MaxLength is the character cap applied to every normalized description.
const MaxLength = 50000

// Normalize collapses any run of whitespace into a single space, trims the
// result, and truncates to MaxLength runes. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	runes := []rune(collapsed)
	if len(runes) > MaxLength {
		runes = runes[:MaxLength]
	}
	return string(runes)
}
