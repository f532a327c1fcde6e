package phonology

import (
	"strings"
	"unicode"
)

// validInitials enumerates the legal Vietnamese onsets: the 17 single
// consonants, the 10 digraphs, and the one trigraph "ngh" (spec.md §4.2.1).
var validInitials = map[string]bool{
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,

	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,

	"ngh": true,
}

// validCodas enumerates the legal Vietnamese codas (spec.md §4.2.1),
// including "k" for ethnic-minority placenames per §4.2.5.
var validCodas = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true, "ng": true,
	"nh": true, "p": true, "t": true, "k": true,
}

// spellingRules maps an onset+first-nucleus-letter pair that would be
// mis-spelled under strict consonant rules to the spelling that should be
// used instead. A hit here means the raw typed form is not valid written
// Vietnamese, even though phonetically it would be.
var spellingRules = map[string]string{
	"ce": "ke", "ci": "ki", "cy": "ky",
	"ka": "ca", "ko": "co", "ku": "cu",
	"ge": "ghe",
	"nge": "nghe", "ngi": "nghi",
	"gha": "ga", "gho": "go", "ghu": "gu",
	"ngha": "nga", "ngho": "ngo", "nghu": "ngu",
}

// Result is the outcome of validating a decomposed syllable.
type Result struct {
	Valid   bool
	Reason  string // empty when Valid
}

func invalid(reason string) Result { return Result{Valid: false, Reason: reason} }

// ValidateSyllable checks a decomposed (onset, nucleus, coda) triple against
// the Vietnamese syllable model of spec.md §4.2.6. nucleus may carry vowel
// diacritics (ă, â, ơ, ...) but no tonal-accent marks; the breve placement
// check (ă must end the nucleus) is done by ValidateNucleusMark.
func ValidateSyllable(onset, nucleus, coda string) Result {
	if nucleus == "" {
		return invalid("no_vowel")
	}

	if onset != "" {
		key := strings.ReplaceAll(strings.ToLower(onset), "đ", "d")
		if !validInitials[key] && !isBareConsonant(key) {
			return invalid("invalid_initial")
		}
	}

	if coda != "" {
		if !validCodas[strings.ToLower(coda)] {
			return invalid("invalid_final")
		}
	}

	if onset != "" && nucleus != "" {
		firstVowel := unicode.ToLower([]rune(nucleus)[0])
		combined := strings.ToLower(onset) + string(firstVowel)
		if _, bad := spellingRules[combined]; bad {
			return invalid("spelling_rule_violation")
		}
	}

	if !validNucleus(nucleus) {
		return invalid("invalid_nucleus")
	}

	return Result{Valid: true}
}

func isBareConsonant(s string) bool {
	if len(s) != 1 {
		return false
	}
	switch rune(s[0]) {
	case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}

// validNuclei is the closed inventory of Vietnamese vowel nuclei (single
// vowels and the permitted diphthong/triphthong combinations of spec.md
// §4.2.1), compared case- and tone/mark-insensitively.
var validNuclei = map[string]bool{
	"a": true, "ă": true, "â": true, "e": true, "ê": true, "i": true,
	"o": true, "ô": true, "ơ": true, "u": true, "ư": true, "y": true,

	"ia": true, "iê": true, "ua": true, "uô": true, "ưa": true, "ươ": true,
	"uơ": false, // never valid on its own; must normalise to uô/ươ first
	"oa": true, "oă": true, "oe": true, "uy": true, "uê": true, "uâ": true,
	"yê": true,

	"iêu": true, "yêu": true, "uôi": true, "ươi": true, "ươu": true,
	"uya": true, "uyê": true, "oai": true, "oay": true, "oeo": true,
}

func validNucleus(nucleus string) bool {
	if nucleus == "" {
		return false
	}
	bare := stripMarks(nucleus)
	if bare == "" {
		return false
	}
	if ok, known := validNuclei[bare]; known {
		return ok
	}
	// Unknown combination of otherwise-valid vowel letters: reject, this
	// is how the validator catches English vowel runs like "ee", "oo",
	// "ea" that are never legal Vietnamese nuclei.
	return false
}

// stripMarks reduces every rune in s to its bare, lower-case base vowel
// letter (a/ă/â/e/ê/i/o/ô/ơ/u/ư/y), discarding tone-mark information so
// the inventory lookup in validNuclei only sees vowel shape.
func stripMarks(s string) string {
	var b strings.Builder
	for _, r := range s {
		base, ok := baseVowelLetters[unicode.ToLower(r)]
		if !ok {
			return ""
		}
		b.WriteRune(base)
	}
	return b.String()
}

var baseVowelLetters = map[rune]rune{
	'a': 'a', 'ă': 'ă', 'â': 'â', 'e': 'e', 'ê': 'ê', 'i': 'i',
	'o': 'o', 'ô': 'ô', 'ơ': 'ơ', 'u': 'u', 'ư': 'ư', 'y': 'y',
}

// ValidateNucleusMark rejects combinations the validator must catch even
// though onset/nucleus/coda alone look fine: a breve (ă) is only ever
// followed by a restricted set of codas/vowels, per spec.md §4.2.6.
func ValidateNucleusMark(nucleus string, tone Tone, coda string) bool {
	if tone != ToneBreve {
		return true
	}
	runes := []rune(nucleus)
	if len(runes) == 0 {
		return true
	}
	// ă must end the nucleus (no vowel follows it, as in "oă"); a coda is fine.
	last := unicode.ToLower(runes[len(runes)-1])
	return last == 'a' || last == 'ă'
}
