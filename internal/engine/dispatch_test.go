package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/goviet-ime/internal/keycode"
)

// TestOnKeyTelexRoundTrip covers spec.md §8 scenario 1: v,i,e,e,j,t renders
// "việt", and SPACE commits it with a trailing space while pushing
// word-history.
func TestOnKeyTelexRoundTrip(t *testing.T) {
	e := New(NewTelexMethod())
	var scr screen

	for _, r := range "vieejt" {
		key, caps := keyOf(r)
		scr.applyOrFallback(e.OnKey(key, caps, false, false), r)
	}
	assert.Equal(t, "việt", scr.String())

	d := e.OnKey(keycode.KeySpace, false, false, false)
	scr.applyOrFallback(d, ' ')
	assert.Equal(t, "việt ", scr.String())
	assert.Equal(t, 1, e.history.Len())
	assert.Equal(t, 0, e.buffer.Len())
}

// TestBackspaceAfterSpaceRestore covers spec.md §8 scenario 6: typing
// "gox" then SPACE renders "gõ ", and DELETE pops the space and restores
// the word exactly as it stood before the space was typed.
func TestBackspaceAfterSpaceRestore(t *testing.T) {
	e := New(NewTelexMethod())
	var scr screen

	for _, r := range "gox" {
		key, caps := keyOf(r)
		scr.applyOrFallback(e.OnKey(key, caps, false, false), r)
	}
	assert.Equal(t, "gõ", scr.String())

	scr.applyOrFallback(e.OnKey(keycode.KeySpace, false, false, false), ' ')
	assert.Equal(t, "gõ ", scr.String())

	scr.apply(e.OnKey(keycode.KeyDelete, false, false, false))
	assert.Equal(t, "gõ", scr.String())

	assert.Equal(t, 3, e.raw.Len())
	assert.Equal(t, "gõ", string(e.buffer.Glyphs()))
}

// TestShiftDeleteWholeWord covers the boundary behaviour: Shift+DELETE on
// a non-empty buffer deletes the full displayed word atomically.
func TestShiftDeleteWholeWord(t *testing.T) {
	e := New(NewTelexMethod())
	var scr screen
	for _, r := range "gox" {
		key, caps := keyOf(r)
		scr.applyOrFallback(e.OnKey(key, caps, false, false), r)
	}
	assert.Equal(t, "gõ", scr.String())

	d := e.OnKey(keycode.KeyDelete, false, false, true)
	assert.Equal(t, ActionConsume, d.Action)
	assert.EqualValues(t, len([]rune("gõ")), d.Backspace)
	assert.Equal(t, 0, e.buffer.Len())
}

// TestEscRestoreReplaysRawKeystrokes covers the boundary behaviour: ESC
// with esc_restore_enabled replaces the on-screen word with the exact
// raw keystrokes, independent of what transforms were applied.
func TestEscRestoreReplaysRawKeystrokes(t *testing.T) {
	e := New(NewTelexMethod())
	var scr screen
	for _, r := range "vieejt" {
		key, caps := keyOf(r)
		scr.applyOrFallback(e.OnKey(key, caps, false, false), r)
	}
	assert.NotEqual(t, "vieejt", scr.String())

	scr.apply(e.OnKey(keycode.KeyEsc, false, false, false))
	assert.Equal(t, "vieejt", scr.String())
	assert.Equal(t, 0, e.buffer.Len())
	assert.Equal(t, 0, e.raw.Len())
}

// TestSetEnabledFalseClearsBufferMidWord covers the boundary behaviour:
// set_enabled(false) mid-word clears the buffer, and subsequent keys pass
// through until re-enabled.
func TestSetEnabledFalseClearsBufferMidWord(t *testing.T) {
	e := New(NewTelexMethod())
	for _, r := range "vie" {
		key, caps := keyOf(r)
		e.OnKey(key, caps, false, false)
	}
	assert.True(t, e.buffer.Len() > 0)

	e.SetEnabled(false)
	assert.Equal(t, 0, e.buffer.Len())

	key, caps := keyOf('s')
	d := e.OnKey(key, caps, false, false)
	assert.Equal(t, ActionPassthrough, d.Action)
	assert.Equal(t, 0, e.buffer.Len())

	e.SetEnabled(true)
	key, caps = keyOf('a')
	d = e.OnKey(key, caps, false, false)
	assert.Equal(t, ActionConsume, d.Action)
}

// TestCommitAndBreakPushesHistory covers spec.md §4.1.3: a break key
// (punctuation) commits the current word into history just like SPACE.
func TestCommitAndBreakPushesHistory(t *testing.T) {
	e := New(NewTelexMethod())
	for _, r := range "vie" {
		key, caps := keyOf(r)
		e.OnKey(key, caps, false, false)
	}
	d := e.OnKey(keycode.KeyComma, false, false, false)
	assert.Equal(t, ActionPassthrough, d.Action)
	assert.Equal(t, 1, e.history.Len())
	assert.Equal(t, 0, e.buffer.Len())
}
