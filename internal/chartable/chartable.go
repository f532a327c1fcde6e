// Package chartable is the read-only precomposed-character table of
// spec.md §6: given (key, caps, tone, mark, stroke) it returns the
// precomposed Vietnamese Unicode scalar, and the inverse parse used by
// RestoreWord to recover Char-cell fields from an existing glyph.
//
// The table is built once at package init from the same base-vowel/tone
// grid the teacher embeds in internal/engine/unicode.go, extended with the
// Tone (circumflex/horn/breve) dimension spec.md's Char cell adds on top
// of the teacher's flat per-glyph tone map.
package chartable

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/username/goviet-ime/internal/phonology"
)

// toneGrid[baseLetter][tone] gives the bare vowel letter (no tonal-accent
// mark yet) once the diacritic (tone, in spec.md's sense) has been applied.
var toneGrid = map[rune]map[phonology.Tone]rune{
	'a': {phonology.ToneNone: 'a', phonology.ToneCircumflex: 'â', phonology.ToneBreve: 'ă'},
	'e': {phonology.ToneNone: 'e', phonology.ToneCircumflex: 'ê'},
	'o': {phonology.ToneNone: 'o', phonology.ToneCircumflex: 'ô', phonology.ToneHorn: 'ơ'},
	'u': {phonology.ToneNone: 'u', phonology.ToneHorn: 'ư'},
	'i': {phonology.ToneNone: 'i'},
	'y': {phonology.ToneNone: 'y'},
}

// markGrid[bareVowel][mark] gives the fully precomposed lower-case glyph.
var markGrid = map[rune]map[phonology.Mark]rune{
	'a': {phonology.MarkNone: 'a', phonology.MarkAcute: 'á', phonology.MarkGrave: 'à', phonology.MarkHook: 'ả', phonology.MarkTilde: 'ã', phonology.MarkDot: 'ạ'},
	'ă': {phonology.MarkNone: 'ă', phonology.MarkAcute: 'ắ', phonology.MarkGrave: 'ằ', phonology.MarkHook: 'ẳ', phonology.MarkTilde: 'ẵ', phonology.MarkDot: 'ặ'},
	'â': {phonology.MarkNone: 'â', phonology.MarkAcute: 'ấ', phonology.MarkGrave: 'ầ', phonology.MarkHook: 'ẩ', phonology.MarkTilde: 'ẫ', phonology.MarkDot: 'ậ'},
	'e': {phonology.MarkNone: 'e', phonology.MarkAcute: 'é', phonology.MarkGrave: 'è', phonology.MarkHook: 'ẻ', phonology.MarkTilde: 'ẽ', phonology.MarkDot: 'ẹ'},
	'ê': {phonology.MarkNone: 'ê', phonology.MarkAcute: 'ế', phonology.MarkGrave: 'ề', phonology.MarkHook: 'ể', phonology.MarkTilde: 'ễ', phonology.MarkDot: 'ệ'},
	'i': {phonology.MarkNone: 'i', phonology.MarkAcute: 'í', phonology.MarkGrave: 'ì', phonology.MarkHook: 'ỉ', phonology.MarkTilde: 'ĩ', phonology.MarkDot: 'ị'},
	'o': {phonology.MarkNone: 'o', phonology.MarkAcute: 'ó', phonology.MarkGrave: 'ò', phonology.MarkHook: 'ỏ', phonology.MarkTilde: 'õ', phonology.MarkDot: 'ọ'},
	'ô': {phonology.MarkNone: 'ô', phonology.MarkAcute: 'ố', phonology.MarkGrave: 'ồ', phonology.MarkHook: 'ổ', phonology.MarkTilde: 'ỗ', phonology.MarkDot: 'ộ'},
	'ơ': {phonology.MarkNone: 'ơ', phonology.MarkAcute: 'ớ', phonology.MarkGrave: 'ờ', phonology.MarkHook: 'ở', phonology.MarkTilde: 'ỡ', phonology.MarkDot: 'ợ'},
	'u': {phonology.MarkNone: 'u', phonology.MarkAcute: 'ú', phonology.MarkGrave: 'ù', phonology.MarkHook: 'ủ', phonology.MarkTilde: 'ũ', phonology.MarkDot: 'ụ'},
	'ư': {phonology.MarkNone: 'ư', phonology.MarkAcute: 'ứ', phonology.MarkGrave: 'ừ', phonology.MarkHook: 'ử', phonology.MarkTilde: 'ữ', phonology.MarkDot: 'ự'},
	'y': {phonology.MarkNone: 'y', phonology.MarkAcute: 'ý', phonology.MarkGrave: 'ỳ', phonology.MarkHook: 'ỷ', phonology.MarkTilde: 'ỹ', phonology.MarkDot: 'ỵ'},
}

// glyphToParts is the inverse of markGrid/toneGrid, built once at init, and
// consulted by Parse (used by RestoreWord, spec.md §6).
type parsed struct {
	base rune // underlying Latin letter, lower-case
	tone phonology.Tone
	mark phonology.Mark
}

var glyphToParts map[rune]parsed

func init() {
	glyphToParts = make(map[rune]parsed)
	for base, tones := range toneGrid {
		for tone, bare := range tones {
			marks, ok := markGrid[bare]
			if !ok {
				continue
			}
			for mark, glyph := range marks {
				glyphToParts[glyph] = parsed{base: base, tone: tone, mark: mark}
			}
		}
	}
}

// Compose returns the precomposed glyph for (key, caps, tone, mark).
// key must be a bare lower-case vowel letter (a/e/i/o/u/y); ok is false if
// no such combination exists in the table (e.g. tone=Horn on 'a').
func Compose(key rune, caps bool, tone phonology.Tone, mark phonology.Mark) (rune, bool) {
	tones, ok := toneGrid[key]
	if !ok {
		return 0, false
	}
	bare, ok := tones[tone]
	if !ok {
		return 0, false
	}
	marks, ok := markGrid[bare]
	if !ok {
		return 0, false
	}
	glyph, ok := marks[mark]
	if !ok {
		return 0, false
	}
	if caps {
		return unicode.ToUpper(glyph), true
	}
	return glyph, true
}

// ComposeStroke returns đ/Đ for the stroke-modified D.
func ComposeStroke(caps bool) rune {
	if caps {
		return 'Đ'
	}
	return 'đ'
}

// Parse is the inverse of Compose: given any rune (as typically recovered
// from an existing word on screen via RestoreWord), return the underlying
// key letter, caps, tone, and mark. Input is NFC-normalised first so a
// glyph pasted in decomposed form (base letter + combining marks) still
// round-trips, the way composed-from-keystrokes glyphs always do.
func Parse(r rune) (key rune, caps bool, tone phonology.Tone, mark phonology.Mark, ok bool) {
	normalized := []rune(norm.NFC.String(string(r)))
	if len(normalized) != 1 {
		return 0, false, phonology.ToneNone, phonology.MarkNone, false
	}
	r = normalized[0]

	if r == 'đ' || r == 'Đ' {
		return 'd', r == 'Đ', phonology.ToneNone, phonology.MarkNone, true
	}

	caps = unicode.IsUpper(r)
	lower := unicode.ToLower(r)
	if p, found := glyphToParts[lower]; found {
		return p.base, caps, p.tone, p.mark, true
	}

	// Plain consonants and untransformed vowels round-trip as themselves.
	if unicode.IsLetter(lower) {
		return lower, caps, phonology.ToneNone, phonology.MarkNone, true
	}
	return 0, false, phonology.ToneNone, phonology.MarkNone, false
}

// IsStroke reports whether r is đ or Đ.
func IsStroke(r rune) bool {
	return r == 'đ' || r == 'Đ'
}
