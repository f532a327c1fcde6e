package engine

import (
	"strings"
	"unicode"

	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/phonology"
)

// consonantLetter renders a consonant Char to its bare onset/coda letter,
// honouring the stroke flag on D.
func consonantLetter(c Char) rune {
	if c.Key == keycode.KeyD && c.Stroke {
		return 'đ'
	}
	r, _ := keycode.ToRune(c.Key, false)
	return r
}

// tonedVowelLetter renders a vowel Char to its bare, tone-applied (but
// mark-stripped) letter — â/ă/ê/ô/ơ/ư as appropriate, or the plain letter
// when Tone is none.
func tonedVowelLetter(c Char) rune {
	base, _ := keycode.ToRune(c.Key, false)
	if g, ok := compose(base, false, c.Tone, phonology.MarkNone); ok {
		return g
	}
	return base
}

// syllableShape is the decomposed view of a buffer's cells shared by the
// validator and the tone/mark placement routines.
type syllableShape struct {
	onset, nucleus, coda string
	// nucleusIdx[i] is the buffer index of the cell that produced
	// nucleus[i] (as a rune index, matching one-to-one since every nucleus
	// letter is exactly one buffer cell).
	nucleusIdx           []int
	quInitial, giInitial bool
}

// shapeOf splits cells into onset/nucleus/coda per spec.md §4.2.1-4.2.2,
// handling the qu-/gi- digraph special cases. ok is false when the cells
// don't form a single onset+nucleus+coda run (e.g. a vowel reappears after
// the coda has started).
func shapeOf(cells []Char) (syllableShape, bool) {
	i := 0
	var onsetRunes []rune
	for i < len(cells) && keycode.IsConsonant(cells[i].Key) {
		onsetRunes = append(onsetRunes, consonantLetter(cells[i]))
		i++
	}
	var nucleusCellIdx []int
	for i < len(cells) && keycode.IsVowel(cells[i].Key) {
		nucleusCellIdx = append(nucleusCellIdx, i)
		i++
	}
	var codaRunes []rune
	for i < len(cells) && keycode.IsConsonant(cells[i].Key) {
		codaRunes = append(codaRunes, consonantLetter(cells[i]))
		i++
	}
	if i != len(cells) {
		return syllableShape{}, false
	}

	onsetLower := strings.ToLower(string(onsetRunes))
	quInitial, giInitial := false, false
	if onsetLower == "q" && len(nucleusCellIdx) >= 1 && unicode.ToLower(tonedVowelLetter(cells[nucleusCellIdx[0]])) == 'u' {
		onsetRunes = append(onsetRunes, tonedVowelLetter(cells[nucleusCellIdx[0]]))
		nucleusCellIdx = nucleusCellIdx[1:]
		quInitial = true
	} else if onsetLower == "g" && len(nucleusCellIdx) >= 2 && unicode.ToLower(tonedVowelLetter(cells[nucleusCellIdx[0]])) == 'i' {
		onsetRunes = append(onsetRunes, tonedVowelLetter(cells[nucleusCellIdx[0]]))
		nucleusCellIdx = nucleusCellIdx[1:]
		giInitial = true
	}

	var nucleusRunes []rune
	for _, idx := range nucleusCellIdx {
		nucleusRunes = append(nucleusRunes, tonedVowelLetter(cells[idx]))
	}
	return syllableShape{
		onset:      string(onsetRunes),
		nucleus:    string(nucleusRunes),
		coda:       string(codaRunes),
		nucleusIdx: nucleusCellIdx,
		quInitial:  quInitial,
		giInitial:  giInitial,
	}, true
}

// validateCells reports whether cells form a valid Vietnamese syllable,
// per spec.md §4.2.6. When freeTone is true (the engine's free_tone_enabled
// config), validation is always satisfied.
func validateCells(cells []Char, freeTone bool) bool {
	if freeTone {
		return true
	}
	if len(cells) == 0 {
		return false
	}
	shape, ok := shapeOf(cells)
	if !ok {
		return false
	}
	if res := phonology.ValidateSyllable(shape.onset, shape.nucleus, shape.coda); !res.Valid {
		return false
	}
	for _, c := range cells {
		if keycode.IsVowel(c.Key) && !phonology.ValidateNucleusMark(shape.nucleus, c.Tone, shape.coda) {
			return false
		}
	}
	return true
}

// bufferIsValid is a convenience wrapper over the Engine's own buffer.
func (e *Engine) bufferIsValid() bool {
	return validateCells(e.buffer.Cells(), e.config.FreeToneEnabled)
}

// markTargetIndex implements spec.md §4.2.2's placement rule against the
// Engine's current buffer, returning the buffer index the tonal-accent
// mark belongs on.
func (e *Engine) markTargetIndex() (int, bool) {
	shape, ok := shapeOf(e.buffer.Cells())
	if !ok || len(shape.nucleusIdx) == 0 {
		return -1, false
	}
	nucleusRunes := []rune(shape.nucleus)
	idx := phonology.FindMarkPosition(nucleusRunes, shape.coda != "", e.config.ModernTone, shape.quInitial, shape.giInitial)
	if idx < 0 || idx >= len(shape.nucleusIdx) {
		return -1, false
	}
	return shape.nucleusIdx[idx], true
}
