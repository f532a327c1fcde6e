package engine

import "github.com/username/goviet-ime/internal/keycode"

// screen models the host's on-screen text for the current word: it
// applies an EditDelta the way any real host would, so these tests
// exercise the buffer/screen-parity invariant (spec.md §8) rather than
// peeking at the internal buffer directly.
type screen struct {
	runes []rune
}

func (s *screen) apply(d EditDelta) {
	if d.Action != ActionConsume {
		return
	}
	n := int(d.Backspace)
	if n > len(s.runes) {
		n = len(s.runes)
	}
	s.runes = append(s.runes[:len(s.runes)-n], d.Chars...)
}

// applyOrFallback mirrors applyDelta in cmd/govietcli: used for keys
// (SPACE, plain passthrough letters) where the host's own default
// handling matters when the engine declines the key.
func (s *screen) applyOrFallback(d EditDelta, fallback rune) {
	if d.Action != ActionConsume {
		s.runes = append(s.runes, fallback)
		return
	}
	s.apply(d)
}

func (s *screen) String() string { return string(s.runes) }

// keyOf maps a lower/upper-case Latin letter or digit to its keycode and
// caps flag, for driving OnKey in tests the way a real keystream would.
func keyOf(r rune) (keycode.Code, bool) {
	caps := r >= 'A' && r <= 'Z'
	k, _ := keycode.FromRune(r)
	return k, caps
}

// typeLetters feeds each rune of s through OnKey as a letter/number key
// (no space, no break keys) and returns the resulting on-screen text.
func typeLetters(e *Engine, s string) string {
	var scr screen
	for _, r := range s {
		key, caps := keyOf(r)
		d := e.OnKey(key, caps, false, false)
		scr.applyOrFallback(d, r)
	}
	return scr.String()
}
