package phonology

import "unicode"

// diacriticVowels are the vowels that already carry a Tone (circumflex,
// horn, or breve) — these always take the tonal-accent mark over any
// neighbour, per spec.md §4.2.2 rule 1.
func hasDiacritic(r rune) bool {
	switch unicode.ToLower(r) {
	case 'ă', 'â', 'ê', 'ô', 'ơ', 'ư':
		return true
	}
	return false
}

// FindMarkPosition implements the tone-mark placement rule of spec.md
// §4.2.2: given the vowel nucleus (as runes, tone-diacritics already
// applied), whether a final consonant follows, the modern/traditional
// flag, and whether the onset is "qu-"/"gi-" (which removes the leading
// glide from nucleus-selection purposes), return the index within nucleus
// that the tonal-accent mark belongs on.
//
// The rule is idempotent by construction: it is a pure function of the
// nucleus shape, never of any previously-applied mark, so calling it twice
// in a row on the same nucleus always returns the same position.
func FindMarkPosition(nucleus []rune, hasCoda bool, modernTone bool, quInitial bool, giInitial bool) int {
	n := len(nucleus)
	if n == 0 {
		return 0
	}

	effective := nucleus
	offset := 0
	// qu- : the u is part of the onset, not the nucleus, for mark-position
	// purposes. gi- likewise treats the i as onset unless it's the only vowel.
	if quInitial && n >= 2 && unicode.ToLower(nucleus[0]) == 'u' {
		effective = nucleus[1:]
		offset = 1
	} else if giInitial && n >= 2 && unicode.ToLower(nucleus[0]) == 'i' {
		effective = nucleus[1:]
		offset = 1
	}
	if len(effective) == 0 {
		return 0
	}
	if len(effective) == 1 {
		return offset
	}

	// Rule 1: a vowel that already carries a diacritic (â, ê, ô, ơ, ư, ă)
	// is the sonority peak and always takes the mark; when two do (ươ),
	// the later one takes it.
	for i := len(effective) - 1; i >= 0; i-- {
		if hasDiacritic(effective[i]) {
			return offset + i
		}
	}

	first := unicode.ToLower(effective[0])
	second := unicode.ToLower(effective[1])

	// With a final consonant, the mark moves to the last nucleus vowel.
	if hasCoda {
		return offset + len(effective) - 1
	}

	// oa/oe/uy and their parallels: modern mode keeps the mark on the
	// first vowel (hóa, khỏe, thúy); traditional mode moves it to the
	// second (hoá, khoẻ, thuý).
	if len(effective) == 2 && isOaOeUyPair(first, second) {
		if modernTone {
			return offset
		}
		return offset + 1
	}

	// ia (no coda): traditional rule keeps the mark on the first vowel
	// (nghĩa, not nghiã).
	if len(effective) == 2 && first == 'i' && second == 'a' {
		return offset
	}

	// ua/ưa (no coda): mark stays on the first vowel (mùa, lừa).
	if len(effective) == 2 && second == 'a' && (first == 'u' || first == 'ư') {
		return offset
	}

	// Remaining open diphthongs (ao, au, ay, eo, eu, ...) take the mark on
	// the first vowel.
	if len(effective) == 2 {
		return offset
	}

	// Triphthongs without coda: the mark sits on the middle vowel.
	return offset + 1
}

func isOaOeUyPair(first, second rune) bool {
	if first == 'o' && (second == 'a' || second == 'e' || second == 'ă') {
		return true
	}
	if first == 'u' && second == 'y' {
		return true
	}
	return false
}

// ToneRule is the three-state cousin of the engine-facing modern_tone
// boolean (spec.md §3): tone adapters internal to this package can be
// asked for Modern, Traditional, or Auto, where Auto currently resolves
// to Modern. The engine's Config.ModernTone setter is unchanged by
// this — Auto is purely a convenience for callers inside phonology
// that don't want to hard-code a choice yet.
type ToneRule int

const (
	ToneRuleModern ToneRule = iota
	ToneRuleTraditional
	ToneRuleAuto
)

// ResolveModernTone collapses a ToneRule to the modernTone bool
// FindMarkPosition takes. Auto resolves to modern: placemark-on-first-
// vowel is the prevailing convention in present-day written Vietnamese
// and in the dictionaries this engine's English detector is grounded on.
func ResolveModernTone(rule ToneRule) bool {
	return rule != ToneRuleTraditional
}
