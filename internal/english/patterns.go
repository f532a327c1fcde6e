// Package english implements the layered English-word detector of
// spec.md §4.3: definite patterns, ambiguous patterns, and dictionary
// membership, combined into a single confidence score consumed by the
// instant-restore decider (§4.3.4).
//
// The layering is grounded on
// _examples/original_source/core/src/engine/english_detection.rs.
// Confidence itself runs two layers: the definite patterns (score 95) and,
// failing those, the ambiguous patterns (consonant clusters, vowel runs,
// suffixes and similar, scored below 95). The common-word and
// programming-term lists are not part of Confidence; they live in
// dictionary.go and are queried through InDictionary/ExactDictionaryMatch.
package english

import (
	"strings"

	"github.com/username/goviet-ime/internal/keycode"
)

// Keystroke is one recorded raw key: the underlying Latin letter/digit and
// whether it was capitalised. Detection works on keystrokes, not glyphs,
// per spec.md §4.3.3 ("a sequence of raw keystrokes, not glyphs").
type Keystroke struct {
	Key  keycode.Code
	Caps bool
}

func lower(k Keystroke) rune {
	r, _ := keycode.ToRune(k.Key, false)
	return r
}

func word(keys []Keystroke) string {
	var b strings.Builder
	for _, k := range keys {
		b.WriteRune(lower(k))
	}
	return b.String()
}

func isConsonantRune(r rune) bool {
	switch r {
	case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'x', 'z', 'f', 'j':
		return true
	}
	return false
}

// Confidence reports a 0..100 English-likeliness score for raw, the
// keystroke sequence typed so far for the current word, by running every
// detection layer and taking the strongest signal. 100 is reserved for
// exact dictionary hits (checked separately by the caller via
// InDictionary/ExactDictionaryMatch, not by Confidence).
func Confidence(raw []Keystroke) int {
	if len(raw) < 2 {
		return 0
	}
	w := word(raw)

	if hasDefinitePattern(w) {
		return 95
	}
	if c := ambiguousConfidence(w); c > 0 {
		return c
	}
	return 0
}

// hasDefinitePattern implements spec.md §4.3.1 (confidence >= 95).
func hasDefinitePattern(w string) bool {
	runes := []rune(w)
	n := len(runes)

	if n >= 2 {
		switch {
		case runes[0] == 'f', runes[0] == 'j', runes[0] == 'z':
			return true
		}
	}

	// "ex" anywhere.
	for i := 0; i+1 < n; i++ {
		if runes[i] == 'e' && runes[i+1] == 'x' {
			return true
		}
	}

	// Double consonants, except dd (đ), cc, gg (Vietnamese digraph shortcuts).
	for i := 0; i+1 < n; i++ {
		if runes[i] == runes[i+1] && isConsonantRune(runes[i]) {
			if runes[i] != 'd' && runes[i] != 'c' && runes[i] != 'g' {
				return true
			}
		}
	}

	// Triple consonants other than "ngh".
	for i := 0; i+2 < n+1 && i+3 <= n; i++ {
		if isConsonantRune(runes[i]) && isConsonantRune(runes[i+1]) && isConsonantRune(runes[i+2]) {
			if string(runes[i:i+3]) != "ngh" {
				return true
			}
		}
	}

	// Word-initial "ad-" ("ex" anywhere is caught above).
	if n >= 2 && runes[0] == 'a' && runes[1] == 'd' {
		return true
	}

	// "ak-"/"az-"/"ah-" followed by non-"n".
	if n >= 2 && runes[0] == 'a' {
		if runes[1] == 'k' || runes[1] == 'z' {
			return true
		}
		if runes[1] == 'h' && n >= 3 && runes[2] != 'n' {
			return true
		}
	}

	// "an" + consonant other than h/g (and not a tone-modifier letter).
	if n >= 3 && runes[0] == 'a' && runes[1] == 'n' {
		third := runes[2]
		isToneModifier := third == 's' || third == 'f' || third == 'r' || third == 'x' || third == 'j' || third == 'z'
		if !isToneModifier && (isConsonantRune(third) || third == 'y') && third != 'h' && third != 'g' {
			return true
		}
	}

	// "tion"/"sion" suffix.
	if n >= 4 {
		end := string(runes[n-4:])
		if end == "tion" || end == "sion" {
			return true
		}
	}

	return false
}

// ambiguousConfidence implements spec.md §4.3.2 (confidence 50..94).
func ambiguousConfidence(w string) int {
	runes := []rune(w)
	n := len(runes)
	if n < 3 {
		return 0
	}

	best := 0
	raise := func(v int) {
		if v > best {
			best = v
		}
	}

	// "wh" at start.
	if n >= 2 && runes[0] == 'w' && runes[1] == 'h' {
		raise(90)
	}
	// "ck" anywhere.
	for i := 0; i+1 < n; i++ {
		if runes[i] == 'c' && runes[i+1] == 'k' {
			raise(90)
		}
	}
	// "gh" not at start.
	for i := 1; i+1 < n; i++ {
		if runes[i] == 'g' && runes[i+1] == 'h' {
			raise(85)
		}
	}
	// "ght".
	for i := 0; i+2 < n; i++ {
		if runes[i] == 'g' && runes[i+1] == 'h' && runes[i+2] == 't' {
			raise(92)
		}
	}
	// "x" after a consonant (not word-initial).
	for i := 1; i < n; i++ {
		if runes[i] == 'x' && isConsonantRune(runes[i-1]) {
			raise(80)
		}
	}
	// Impossible two-/three-consonant clusters.
	if hasImpossibleCluster(runes) {
		raise(90)
	}
	// English-only vowel clusters.
	if hasEnglishVowelPattern(runes) {
		raise(70)
	}
	// Common suffixes.
	if s := suffixConfidence(w); s > 0 {
		raise(s)
	}
	return best
}

func hasImpossibleCluster(runes []rune) bool {
	n := len(runes)
	for i := 0; i+2 < n+1 && i+3 <= n; i++ {
		if isConsonantRune(runes[i]) && isConsonantRune(runes[i+1]) && isConsonantRune(runes[i+2]) {
			return true
		}
	}
	pairs := [][2]rune{
		{'k', 'n'}, {'w', 'r'}, {'p', 's'}, {'p', 't'}, {'p', 'n'}, {'g', 'n'}, {'m', 'n'},
	}
	for i := 0; i+1 < n; i++ {
		k1, k2 := runes[i], runes[i+1]
		if !isConsonantRune(k1) || !isConsonantRune(k2) {
			continue
		}
		for _, p := range pairs {
			if k1 == p[0] && k2 == p[1] {
				return true
			}
		}
		if k1 == 'f' && isConsonantRune(k2) {
			return true
		}
		if k1 == 'w' && isConsonantRune(k2) {
			return true
		}
		if k1 == 'j' && isConsonantRune(k2) {
			return true
		}
		if k1 == 'z' && isConsonantRune(k2) {
			return true
		}
		if k2 == 'l' && strings.ContainsRune("bcfgps", k1) {
			return true
		}
		if k2 == 'r' && strings.ContainsRune("bcdfgp", k1) {
			return true
		}
		if i == 0 && k1 == 's' && strings.ContainsRune("ckmnptw", k2) {
			return true
		}
		if k2 == 'w' && strings.ContainsRune("tds", k1) {
			return true
		}
	}
	return false
}

func hasEnglishVowelPattern(runes []rune) bool {
	n := len(runes)
	eCount := 0
	for _, r := range runes {
		if r == 'e' {
			eCount++
		}
	}
	if eCount >= 3 {
		return true
	}
	for i := 0; i+1 < n; i++ {
		if runes[i] == 'e' && runes[i+1] == 'e' {
			return true
		}
		if runes[i] == 'o' && runes[i+1] == 'o' {
			return true
		}
	}
	if n >= 3 {
		for i := 0; i+2 < n; i++ {
			if runes[i] == 'o' && runes[i+1] == 'u' && runes[i+2] == 'g' {
				return true
			}
		}
	}
	// word-final "-ie", "-ey"
	if n >= 2 {
		last2 := string(runes[n-2:])
		if last2 == "ie" || last2 == "ey" {
			return true
		}
	}
	return false
}

func suffixConfidence(w string) int {
	type suf struct {
		s   string
		min int
		c   int
	}
	suffixes := []suf{
		{"ing", 5, 88}, {"ness", 5, 90}, {"ment", 5, 88}, {"able", 5, 85},
		{"ible", 5, 85}, {"less", 5, 85}, {"ful", 4, 82}, {"ous", 5, 85},
	}
	for _, s := range suffixes {
		if len(w) >= s.min && strings.HasSuffix(w, s.s) {
			return s.c
		}
	}
	// -ly on a preceding consonant
	if strings.HasSuffix(w, "ly") && len(w) >= 4 {
		before := rune(w[len(w)-3])
		if isConsonantRune(before) {
			return 75
		}
	}
	// -er/-or on selected preceding consonants
	if len(w) >= 4 && (strings.HasSuffix(w, "er") || strings.HasSuffix(w, "or")) {
		before := rune(w[len(w)-3])
		if before == 't' || before == 'k' || before == 'w' {
			return 65
		}
	}
	return 0
}

// Word-initial F/J/Z: spec.md §4.1.4(b) — these keys are absent as
// word-initials in Vietnamese orthography. The engine calls FJZInitial on
// a word's first keystroke; Confidence applies the same check through
// hasDefinitePattern.
func FJZInitial(k keycode.Code) bool {
	return k == keycode.KeyF || k == keycode.KeyJ || k == keycode.KeyZ
}

// AmbiguousDeferredPrefix reports the spec.md §4.3.6 "genuinely ambiguous"
// onsets ("ng-", "ngh-", "th-", "tr-", "kr-", and a lone initial N/T/K)
// that suppress English detection until more keys arrive.
func AmbiguousDeferredPrefix(raw []Keystroke) bool {
	w := word(raw)
	for _, p := range []string{"ng", "ngh", "th", "tr", "kr"} {
		if strings.HasPrefix(w, p) {
			return true
		}
	}
	if len(raw) == 1 {
		r := lower(raw[0])
		if r == 'n' || r == 't' || r == 'k' {
			return true
		}
	}
	return false
}
