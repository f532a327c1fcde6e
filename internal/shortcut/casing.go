package shortcut

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperCaser and titleCaser use golang.org/x/text/cases rather than
// strings.ToUpper/ToTitle so that Vietnamese precomposed vowels with
// diacritics (ồ, ễ, ậ, …) case-fold correctly — strings.ToUpper handles
// these fine in modern Go, but cases.Caser additionally respects
// language-sensitive casing rules should a shortcut ever carry one of the
// handful of Vietnamese letters where simple rune-wise upper-casing and
// language-aware title-casing diverge (e.g. the first letter of a
// multi-word replacement like "Hồ Chí Minh").
var (
	upperCaser = cases.Upper(language.Vietnamese)
	titleCaser = cases.Title(language.Vietnamese)
)

func toUpper(s string) string {
	return upperCaser.String(s)
}

func titleFirst(s string) string {
	return titleCaser.String(s)
}

// isAllUpper reports whether every letter rune in s is upper-case
// (mirrors the source's trigger.chars().all(|c| c.is_uppercase())).
func isAllUpper(s string) bool {
	seenLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		seenLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return seenLetter
}

func isFirstUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
