// Package keycode defines the engine's virtual keycode convention and the
// read-only classification tables the engine consults on every keystroke
// (is_letter, is_number, is_vowel, is_consonant, is_break).
//
// Keycodes are exchanged opaquely with the host, exactly like the teacher's
// X11-keysym convention, but collapsed to a small dense space (1..~50)
// rather than raw keysym values, since the engine only ever needs to tell
// letters, digits and a handful of named keys apart.
package keycode

// Code is the opaque keycode the host exchanges with the engine.
type Code uint16

// Letter keycodes, A through Z, in alphabetical order starting at 1.
// 0 is reserved (KeyNone) so the zero value of Code is never a real key.
const (
	KeyNone Code = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyN0
	KeyN1
	KeyN2
	KeyN3
	KeyN4
	KeyN5
	KeyN6
	KeyN7
	KeyN8
	KeyN9

	KeySpace
	KeyDelete // backspace: removes the char/word behind the cursor, per spec.md §4.1.2
	KeyEsc
	KeyReturn
	KeyTab

	KeySlash
	KeySemicolon
	KeyComma
	KeyPeriod
	KeyApostrophe
	KeyMinus

	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
)

var letterToRune = map[Code]rune{
	KeyA: 'a', KeyB: 'b', KeyC: 'c', KeyD: 'd', KeyE: 'e', KeyF: 'f',
	KeyG: 'g', KeyH: 'h', KeyI: 'i', KeyJ: 'j', KeyK: 'k', KeyL: 'l',
	KeyM: 'm', KeyN: 'n', KeyO: 'o', KeyP: 'p', KeyQ: 'q', KeyR: 'r',
	KeyS: 's', KeyT: 't', KeyU: 'u', KeyV: 'v', KeyW: 'w', KeyX: 'x',
	KeyY: 'y', KeyZ: 'z',
}

var runeToLetter map[rune]Code

var digitToRune = map[Code]rune{
	KeyN0: '0', KeyN1: '1', KeyN2: '2', KeyN3: '3', KeyN4: '4',
	KeyN5: '5', KeyN6: '6', KeyN7: '7', KeyN8: '8', KeyN9: '9',
}

var runeToDigit map[rune]Code

func init() {
	runeToLetter = make(map[rune]Code, len(letterToRune))
	for k, r := range letterToRune {
		runeToLetter[r] = k
	}
	runeToDigit = make(map[rune]Code, len(digitToRune))
	for k, r := range digitToRune {
		runeToDigit[r] = k
	}
}

// IsLetter reports whether key is one of the 26 Latin letter keys.
func IsLetter(key Code) bool {
	_, ok := letterToRune[key]
	return ok
}

// IsNumber reports whether key is one of the 10 digit keys.
func IsNumber(key Code) bool {
	_, ok := digitToRune[key]
	return ok
}

// vowelLetters are the Latin letters that can stand as a Vietnamese vowel
// nucleus letter (before any diacritic is applied).
var vowelLetters = map[Code]bool{
	KeyA: true, KeyE: true, KeyI: true, KeyO: true, KeyU: true, KeyY: true,
}

// IsVowel reports whether key is a vowel letter key.
func IsVowel(key Code) bool {
	return vowelLetters[key]
}

// IsConsonant reports whether key is a consonant letter key.
func IsConsonant(key Code) bool {
	return IsLetter(key) && !vowelLetters[key]
}

// breakKeys are keys that always terminate the current word: punctuation,
// arrow keys, and Enter/Tab. Digits are break keys only when not acting as
// a VNI modifier, which the engine itself decides (see IsNumber).
var breakKeys = map[Code]bool{
	KeySlash: true, KeySemicolon: true, KeyComma: true, KeyPeriod: true,
	KeyApostrophe: true, KeyMinus: true,
	KeyArrowLeft: true, KeyArrowRight: true, KeyArrowUp: true, KeyArrowDown: true,
	KeyReturn: true, KeyTab: true,
}

// IsBreak reports whether key is a break key as defined in spec.md §4.1
// step 5 (punctuation, arrows, and other keys that are never Vietnamese
// modifiers). Digits are handled by the caller, since whether a digit acts
// as a break key depends on the active input method (VNI vs Telex).
func IsBreak(key Code) bool {
	return breakKeys[key]
}

// ToRune returns the Latin letter or digit a keycode represents, and
// whether the keycode has one. caps selects upper-case for letters; it has
// no effect on digits.
func ToRune(key Code, caps bool) (rune, bool) {
	if r, ok := letterToRune[key]; ok {
		if caps {
			return r - ('a' - 'A'), true
		}
		return r, true
	}
	if r, ok := digitToRune[key]; ok {
		return r, true
	}
	return 0, false
}

// FromRune maps a Latin letter or digit back to its keycode. Case is
// ignored for letters (the caller tracks caps separately, as the engine's
// Char cell does).
func FromRune(r rune) (Code, bool) {
	lower := r
	if r >= 'A' && r <= 'Z' {
		lower = r + ('a' - 'A')
	}
	if k, ok := runeToLetter[lower]; ok {
		return k, true
	}
	if k, ok := runeToDigit[r]; ok {
		return k, true
	}
	return KeyNone, false
}
