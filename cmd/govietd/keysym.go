package main

import "github.com/username/goviet-ime/internal/keycode"

// runeFromKeysym converts an X11 keysym to a rune, the way the teacher's
// keysymToRune did: keysyms below 0x100 are Latin-1 and map straight
// through, and keysyms above 0x01000000 encode a Unicode codepoint
// directly in their low bits.
func runeFromKeysym(keysym uint32) rune {
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}

// Named X11 keysyms the daemon needs to recognize that don't decode to a
// printable rune.
const (
	keysymBackSpace = 0xff08
	keysymTab       = 0xff09
	keysymReturn    = 0xff0d
	keysymEscape    = 0xff1b
	keysymSpace     = 0x0020
	keysymDelete    = 0xffff
	keysymLeft      = 0xff51
	keysymUp        = 0xff52
	keysymRight     = 0xff53
	keysymDown      = 0xff54
)

// keyFromKeysym translates an X11 keysym into the engine's keycode
// convention. Upper-case letter keysyms report caps true; lower-case
// letters and digits report caps from the Shift modifier bit; named keys
// and punctuation always report caps false.
func keyFromKeysym(keysym uint32, shift bool) (key keycode.Code, caps bool, ok bool) {
	switch keysym {
	case keysymBackSpace:
		return keycode.KeyDelete, false, true
	case keysymTab:
		return keycode.KeyTab, false, true
	case keysymReturn:
		return keycode.KeyReturn, false, true
	case keysymEscape:
		return keycode.KeyEsc, false, true
	case keysymSpace:
		return keycode.KeySpace, false, true
	case keysymDelete:
		return keycode.KeyDelete, false, true
	case keysymLeft:
		return keycode.KeyArrowLeft, false, true
	case keysymRight:
		return keycode.KeyArrowRight, false, true
	case keysymUp:
		return keycode.KeyArrowUp, false, true
	case keysymDown:
		return keycode.KeyArrowDown, false, true
	}

	r := runeFromKeysym(keysym)
	if r == 0 {
		return keycode.KeyNone, false, false
	}
	if r >= 'A' && r <= 'Z' {
		k, ok := keycode.FromRune(r)
		return k, true, ok
	}
	k, ok := keycode.FromRune(r)
	if !ok {
		switch r {
		case '/':
			return keycode.KeySlash, false, true
		case ';':
			return keycode.KeySemicolon, false, true
		case ',':
			return keycode.KeyComma, false, true
		case '.':
			return keycode.KeyPeriod, false, true
		case '\'':
			return keycode.KeyApostrophe, false, true
		case '-':
			return keycode.KeyMinus, false, true
		}
		return keycode.KeyNone, false, false
	}
	return k, shift, true
}
