package conjugator

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Atone strips vowel-quantity diacritics (macrons, breves) and any other
// combining mark from s.
func Atone(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// deramiseReplacer folds consonantal j/v to i/u and expands ligatures.
var deramiseReplacer = strings.NewReplacer(
	"J", "I",
	"j", "i",
	"V", "U",
	"v", "u",
	"\u00e6", "ae", // æ
	"\u00c6", "Ae", // Æ
	"\u0153", "oe", // œ
	"\u0152", "Oe", // Œ
)

// Deramise converts j→i, v→u and expands æ/œ.
func Deramise(s string) string {
	return deramiseReplacer.Replace(s)
}

// NormalizeKey returns the lookup key for a lemma typed by a user or
// listed by the lexical service: trimmed, lower-cased, without quantity
// marks and with j/v folded. "Amō", "amo" and " AMO " share a key, as do
// "uenio" and "venio".
func NormalizeKey(s string) string {
	return strings.ToLower(Atone(Deramise(strings.TrimSpace(s))))
}
