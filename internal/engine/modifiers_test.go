package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTelexDoublePressRevert covers spec.md §8 scenario 2: r,e,s,s renders
// "res" — the second "s" un-marks the acute on "e" instead of stacking a
// second mark, then re-appends itself as a plain letter.
func TestTelexDoublePressRevert(t *testing.T) {
	e := New(NewTelexMethod())
	got := typeLetters(e, "ress")
	assert.Equal(t, "res", got)
}

// TestTelexBackwardCircumflexPlacement covers spec.md §8 scenario 4: with
// the buffer already ending in a valid final consonant, a circumflex
// doubling key reaches back across it to the earlier vowel: "cam"+a
// -> "câm".
func TestTelexBackwardCircumflexPlacement(t *testing.T) {
	e := New(NewTelexMethod())
	got := typeLetters(e, "cama")
	assert.Equal(t, "câm", got)
}

// TestVNIToneMarkPlacementOAPair covers spec.md §8 scenario 5: VNI
// h,o,a,1 renders "hóa" under the modern tone-placement rule (mark on
// the first vowel of the oa pair) and "hoá" under the traditional rule
// (mark on the second).
func TestVNIToneMarkPlacementOAPair(t *testing.T) {
	modern := New(NewVNIMethod())
	assert.Equal(t, "hóa", typeLetters(modern, "hoa1"))

	traditional := New(NewVNIMethod())
	traditional.SetModernTone(false)
	assert.Equal(t, "hoá", typeLetters(traditional, "hoa1"))
}

// TestTelexDoubleDRevert covers the stroke analogue of the double-press
// revert rule: "dd" strokes to "đ", and a third "d" reverts the stroke,
// leaving "dd" rather than "đd".
func TestTelexDoubleDRevert(t *testing.T) {
	e := New(NewTelexMethod())
	assert.Equal(t, "đ", typeLetters(e, "dd"))
	assert.Equal(t, "dd", typeLetters(New(NewTelexMethod()), "ddd"))
}

// TestTelexHornCompound covers spec.md §4.2.4: horn applied to one half
// of a u-o nucleus pair propagates to the other half.
func TestTelexHornCompound(t *testing.T) {
	e := New(NewTelexMethod())
	got := typeLetters(e, "huow")
	assert.Equal(t, "hươ", got)
}

// TestInvalidOnsetNeverVisiblyRestores documents that an invalid-onset
// word like "class" never reaches a visible instant-restore edit: every
// modifier attempt on it fails Vietnamese validation before any
// transform is ever committed to the buffer, so hasAnyTransform stays
// false and maybeRestore bails out without an edit. The plain letters
// still end up on screen, just never via a restore delta.
func TestInvalidOnsetNeverVisiblyRestores(t *testing.T) {
	e := New(NewTelexMethod())
	got := typeLetters(e, "class")
	assert.Equal(t, "class", got)
}

// TestEnglishLockPassesRemainderRaw covers spec.md §4.3.5: once a word is
// locked English, every subsequent keystroke passes through raw even when
// it would otherwise classify as a Vietnamese modifier. "can" hits the
// dictionary exactly on its third letter, with no tone/mark applied yet
// (so no instant-restore edit fires); the trailing "s" must not then
// apply an acute mark to the "a", rendering "cán".
func TestEnglishLockPassesRemainderRaw(t *testing.T) {
	e := New(NewTelexMethod())
	got := typeLetters(e, "cans")
	assert.Equal(t, "cans", got)
	assert.True(t, e.isEnglishWord)
}

// TestEnglishLockSurvivesDoublePressKey covers the same lock for a key
// that would otherwise trigger the double-press-revert path: once "can"
// locks English, a second "n" must append plainly rather than being
// evaluated as a revert of some earlier transform.
func TestEnglishLockSurvivesDoublePressKey(t *testing.T) {
	e := New(NewTelexMethod())
	got := typeLetters(e, "cann")
	assert.Equal(t, "cann", got)
	assert.True(t, e.isEnglishWord)
}
