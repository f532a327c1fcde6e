package engine

import (
	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/phonology"
)

// revert implements spec.md §4.1.5: the double-press revert routines
// invoked by the top of the modifier pipeline when the incoming key
// matches the key recorded in lastTransform.
func (e *Engine) revert(key keycode.Code, caps bool) (EditDelta, bool) {
	switch e.lastTransform.Kind {
	case TransformStroke:
		return e.revertStroke(caps)
	case TransformTone:
		return e.revertToneOrMark(key, caps, true)
	case TransformMark:
		return e.revertToneOrMark(key, caps, false)
	}
	return EditDelta{}, false
}

// revertStroke clears the stroke flag on the D it was applied to and
// appends a fresh, un-stroked D — so "dd" typed a third time in Telex
// (or "9" pressed twice in VNI) yields "dd" rather than "đd".
func (e *Engine) revertStroke(caps bool) (EditDelta, bool) {
	cells := e.buffer.Cells()
	idx := -1
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i].Key == keycode.KeyD && cells[i].Stroke {
			idx = i
			break
		}
	}
	if idx < 0 {
		return EditDelta{}, false
	}
	c := cells[idx]
	c.Stroke = false
	e.buffer.Set(idx, c)
	e.buffer.Append(Char{Key: keycode.KeyD, Caps: caps})
	e.lastTransform = Transform{}
	return e.rebuildFromAfterInsert(idx), true
}

// revertToneOrMark clears the tone/mark on the rightmost vowel that
// carries one and appends the just-pressed key as a plain raw letter
// (spec.md: "res" from "r,e,s,s" — the second 's' un-marks the 'e' and is
// itself appended as a letter). Two identical consonant-ish keys in a row
// is a strong English signal, so the word is marked likely-English.
func (e *Engine) revertToneOrMark(key keycode.Code, caps bool, isTone bool) (EditDelta, bool) {
	cells := e.buffer.Cells()
	idx := -1
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if isTone && c.Tone != phonology.ToneNone {
			idx = i
			break
		}
		if !isTone && c.Mark != phonology.MarkNone {
			idx = i
			break
		}
	}
	if idx < 0 {
		return EditDelta{}, false
	}
	c := cells[idx]
	if isTone {
		c.Tone = phonology.ToneNone
	} else {
		c.Mark = phonology.MarkNone
	}
	e.buffer.Set(idx, c)
	e.buffer.Append(Char{Key: key, Caps: caps})
	e.lastTransform = Transform{}
	// Only a doubled Telex mark-letter (ss, ff, rr, xx, jj) is the strong
	// English signal spec.md describes; doubled circumflex vowels (aa, ee,
	// oo) and VNI digit doubling are ordinary Vietnamese typing.
	if !isTone && keycode.IsLetter(key) {
		e.isEnglishWord = true
	}
	return e.rebuildFromAfterInsert(idx), true
}
