package english

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/goviet-ime/internal/keycode"
)

func keystrokes(s string) []Keystroke {
	out := make([]Keystroke, 0, len(s))
	for _, r := range s {
		key, ok := keycode.FromRune(r)
		if !ok {
			continue
		}
		out = append(out, Keystroke{Key: key, Caps: r >= 'A' && r <= 'Z'})
	}
	return out
}

func TestConfidenceDefinitePatterns(t *testing.T) {
	cases := []string{"fix", "jump", "zone", "export", "excel", "class", "address"}
	for _, w := range cases {
		assert.Equalf(t, 95, Confidence(keystrokes(w)), "word %q", w)
	}
}

func TestConfidenceAmbiguousPatterns(t *testing.T) {
	assert.GreaterOrEqual(t, Confidence(keystrokes("white")), 50)
	assert.GreaterOrEqual(t, Confidence(keystrokes("truck")), 50)
	assert.GreaterOrEqual(t, Confidence(keystrokes("running")), 50)
}

func TestConfidenceShortBufferIsZero(t *testing.T) {
	assert.Equal(t, 0, Confidence(keystrokes("a")))
}

func TestConfidenceVietnameseWordsScoreLow(t *testing.T) {
	for _, w := range []string{"nguoi", "thuong", "chuyen", "xuan"} {
		assert.Lessf(t, Confidence(keystrokes(w)), 60, "word %q", w)
	}
}

func TestFJZInitial(t *testing.T) {
	assert.True(t, FJZInitial(keycode.KeyF))
	assert.True(t, FJZInitial(keycode.KeyJ))
	assert.True(t, FJZInitial(keycode.KeyZ))
	assert.False(t, FJZInitial(keycode.KeyS))
}

func TestAmbiguousDeferredPrefix(t *testing.T) {
	assert.True(t, AmbiguousDeferredPrefix(keystrokes("th")))
	assert.True(t, AmbiguousDeferredPrefix(keystrokes("tr")))
	assert.True(t, AmbiguousDeferredPrefix(keystrokes("ngh")))
	assert.True(t, AmbiguousDeferredPrefix(keystrokes("n")))
	assert.False(t, AmbiguousDeferredPrefix(keystrokes("ba")))
}
