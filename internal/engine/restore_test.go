package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/goviet-ime/internal/keycode"
)

// TestInstantRestoreOnDictionaryHit exercises the instant-restore
// mechanism of spec.md §4.3.4-4.3.5: typing "test" lets the acute-mark
// key apply to the intermediate "te" (rendering "té"), then the final
// "t" completes an exact dictionary match and the whole word restores
// to plain Latin letters in a single edit.
func TestInstantRestoreOnDictionaryHit(t *testing.T) {
	e := New(NewTelexMethod())
	var scr screen

	for i, r := range "tes" {
		key, caps := keyOf(r)
		scr.applyOrFallback(e.OnKey(key, caps, false, false), r)
		if i == 2 {
			assert.Equal(t, "té", scr.String())
		}
	}

	key, caps := keyOf('t')
	scr.apply(e.OnKey(key, caps, false, false))
	assert.Equal(t, "test", scr.String())
	assert.True(t, e.isEnglishWord)
}

// TestGenuineVietnameseMarkIsNotRestored is the negative counterpart:
// "ban" followed by the acute-mark key renders "bán" and stays put —
// no dictionary hit, low phonetic confidence, and a validly-marked
// Vietnamese syllable all suppress restoration.
func TestGenuineVietnameseMarkIsNotRestored(t *testing.T) {
	e := New(NewTelexMethod())
	got := typeLetters(e, "bans")
	assert.Equal(t, "bán", got)
	assert.False(t, e.isEnglishWord)
}

// TestEscRestoreClearsRawInput covers the ESC boundary behaviour from the
// other side: after a restore, both buffer and raw-input are empty, so a
// fresh word typed immediately after starts clean.
func TestEscRestoreClearsRawInput(t *testing.T) {
	e := New(NewTelexMethod())
	typeLetters(e, "viej")
	e.OnKey(keycode.KeyEsc, false, false, false)
	assert.Equal(t, 0, e.buffer.Len())
	assert.Equal(t, 0, e.raw.Len())

	got := typeLetters(e, "as")
	assert.Equal(t, "á", got)
}
