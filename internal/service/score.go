package service

import (
	"strings"
	"unicode"

	"vocabulaire/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims, composes (NFC) and case-folds s for locale-independent comparison
func Normalize(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// StripAccents removes combining marks after canonical decomposition
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Classify scores reply against the accepted synonyms.
// matched is the synonym the reply was accepted for, empty when wrong.
func Classify(reply string, synonyms []string) (verdict domain.Verdict, matched string) {
	folded := Normalize(reply)
	for _, syn := range synonyms {
		if Normalize(syn) == folded {
			return domain.VerdictCorrect, syn
		}
	}

	bare := StripAccents(folded)
	for _, syn := range synonyms {
		if StripAccents(Normalize(syn)) == bare {
			return domain.VerdictNear, syn
		}
	}

	return domain.VerdictWrong, ""
}
