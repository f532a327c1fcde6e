package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/shortcut"
)

// TestOnWordBoundaryShortcutFiresAtSpace covers spec.md §4.5's
// OnWordBoundary condition: the expansion only fires once SPACE arrives,
// and the trailing space rides along with it.
func TestOnWordBoundaryShortcutFiresAtSpace(t *testing.T) {
	e := New(NewTelexMethod())
	e.Shortcuts().Add(shortcut.New("vn", "Việt Nam"))
	var scr screen

	for _, r := range "vn" {
		key, caps := keyOf(r)
		scr.applyOrFallback(e.OnKey(key, caps, false, false), r)
	}
	assert.Equal(t, "vn", scr.String())

	scr.applyOrFallback(e.OnKey(keycode.KeySpace, false, false, false), ' ')
	assert.Equal(t, "Việt Nam ", scr.String())
}

// TestImmediateShortcutFiresMidWord covers spec.md §4.5's Immediate
// condition: the trigger expands the instant the buffer equals it, on the
// very keystroke that completes it, with no SPACE required.
func TestImmediateShortcutFiresMidWord(t *testing.T) {
	e := New(NewTelexMethod())
	e.Shortcuts().Add(shortcut.NewImmediate("dc", "được"))

	got := typeLetters(e, "dc")
	assert.Equal(t, "được", got)
}

// TestImmediateShortcutKeepsTypingAfterExpansion covers that the engine
// stays in the same word after an Immediate expansion: a further plain
// letter keystroke appends onto the replacement text rather than being
// dropped or restarting the word.
func TestImmediateShortcutKeepsTypingAfterExpansion(t *testing.T) {
	e := New(NewTelexMethod())
	e.Shortcuts().Add(shortcut.NewImmediate("dc", "được"))

	got := typeLetters(e, "dcc")
	assert.Equal(t, "đượcc", got)
}

// TestImmediateShortcutSkipsWithNonLetterPrefix covers that, like
// OnWordBoundary shortcuts, an Immediate shortcut never fires once the
// buffer carries a non-letter prefix.
func TestImmediateShortcutSkipsWithNonLetterPrefix(t *testing.T) {
	e := New(NewTelexMethod())
	e.Shortcuts().Add(shortcut.NewImmediate("dc", "được"))
	e.hasNonLetterPrefix = true

	got := typeLetters(e, "dc")
	assert.Equal(t, "dc", got)
}

// TestDisabledShortcutsSkipsImmediateExpansion covers that turning
// shortcuts off suppresses Immediate firing the same way it suppresses
// OnWordBoundary firing.
func TestDisabledShortcutsSkipsImmediateExpansion(t *testing.T) {
	e := New(NewTelexMethod())
	e.Shortcuts().Add(shortcut.NewImmediate("dc", "được"))
	e.SetShortcutsEnabled(false)

	got := typeLetters(e, "dc")
	assert.Equal(t, "dc", got)
}
