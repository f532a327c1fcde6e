package engine

import "github.com/username/goviet-ime/internal/keycode"

func isVowelKey(k keycode.Code) bool { return keycode.IsVowel(k) }

func keystrokeRune(k Keystroke) (rune, bool) {
	return keycode.ToRune(k.Key, k.Caps)
}
