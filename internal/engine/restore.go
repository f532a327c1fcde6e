package engine

import (
	"github.com/username/goviet-ime/internal/chartable"
	"github.com/username/goviet-ime/internal/english"
	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/phonology"
)

// escRestore implements spec.md §4.1 step 3: replace the on-screen word
// with the exact raw keystrokes, then hard reset.
func (e *Engine) escRestore() EditDelta {
	backspace := len(e.buffer.Glyphs())
	chars := e.raw.Glyphs()
	delta := consume(backspace, chars)
	e.hardReset()
	return delta
}

// englishKeystrokes converts the Engine's raw-input ring to the shape the
// english package works on.
func (e *Engine) englishKeystrokes() []english.Keystroke {
	raw := e.raw.Slice()
	out := make([]english.Keystroke, len(raw))
	for i, k := range raw {
		out[i] = english.Keystroke{Key: k.Key, Caps: k.Caps}
	}
	return out
}

// phoneticConfidence and dictHit expose the english package's verdicts for
// the Engine's current raw-input; dictHit is true only when the raw input
// is exactly a dictionary entry, not merely a prefix of one.
func (e *Engine) phoneticConfidence() int {
	return english.Confidence(e.englishKeystrokes())
}

func (e *Engine) dictHit() bool {
	return english.ExactDictionaryMatch(e.englishKeystrokes())
}

// instantRestore implements spec.md §4.3.5: rewrite the in-flight buffer
// back to raw Latin letters, re-establish buffer/raw parity, and mark the
// word English so the remainder is passed through raw.
func (e *Engine) instantRestore() EditDelta {
	backspace := len(e.buffer.Glyphs())
	raw := e.raw.Slice()

	e.buffer.Clear()
	for _, k := range raw {
		e.buffer.Append(Char{Key: k.Key, Caps: k.Caps})
	}
	e.lastTransform = Transform{}
	e.isEnglishWord = true

	chars := make([]rune, 0, len(raw))
	for _, k := range raw {
		if r, ok := keycode.ToRune(k.Key, k.Caps); ok {
			chars = append(chars, r)
		}
	}
	return consume(backspace, chars)
}

// maybeRestore implements spec.md §4.3.4's decision table at the point a
// modifier application just failed Vietnamese validation: vietnameseValid
// is false by construction (the caller already rejected the buffer), so
// this only needs dictHit and phoneticConfidence. The short-word policy
// (spec.md §8, english.ShortWordThreshold) raises the bar for 2-letter
// buffers that hit neither dictionary.
func (e *Engine) maybeRestore() (EditDelta, bool) {
	if !e.config.InstantRestoreEnabled || !e.hasAnyTransform() {
		return EditDelta{}, false
	}
	hit := e.dictHit()
	conf := e.phoneticConfidence()
	if e.buffer.Len() <= 2 && !hit && conf < english.ShortWordThreshold {
		return EditDelta{}, false
	}
	if english.Decide(false, hit, conf) != english.RestoreEnglish {
		return EditDelta{}, false
	}
	return e.instantRestore(), true
}

// hasMark reports whether any buffered Char currently carries a
// tonal-accent mark.
func (e *Engine) hasMark() bool {
	for i := 0; i < e.buffer.Len(); i++ {
		if e.buffer.At(i).Mark != phonology.MarkNone {
			return true
		}
	}
	return false
}

// hasCompoundUOWithTone reports whether the buffer contains a complete ươ
// compound (adjacent horned u then horned o) where some vowel also carries
// a tonal-accent mark — spec.md §4.3.6's strongest Vietnamese-side guard.
func (e *Engine) hasCompoundUOWithTone() bool {
	if !e.hasMark() {
		return false
	}
	for i := 0; i+1 < e.buffer.Len(); i++ {
		a, b := e.buffer.At(i), e.buffer.At(i+1)
		if !keycode.IsVowel(a.Key) || !keycode.IsVowel(b.Key) {
			continue
		}
		aBase, _ := keycode.ToRune(a.Key, false)
		bBase, _ := keycode.ToRune(b.Key, false)
		if aBase == 'u' && a.Tone == phonology.ToneHorn && bBase == 'o' && b.Tone == phonology.ToneHorn {
			return true
		}
	}
	return false
}

// suppressEnglish implements spec.md §4.3.6: explicit Vietnamese-side
// signals that suppress English restoration even when phonotactics look
// English.
func (e *Engine) suppressEnglish() bool {
	if e.hasMark() {
		return true
	}
	if e.hasCompoundUOWithTone() {
		return true
	}
	if english.AmbiguousDeferredPrefix(e.englishKeystrokes()) {
		return true
	}
	if e.bufferIsValid() {
		return true
	}
	return false
}

// RestoreWord parses a rendered Vietnamese word into fresh Char cells and
// re-seeds buffer and raw-input, for when the host detects the cursor
// landed inside an existing word. The reconstructed raw-input records only
// the base letters recoverable from the glyph (key+caps), since the actual
// original keystrokes that produced it (which modifier keys, in which
// order) are not recoverable from the rendered text alone; this makes
// RestoreWord's ESC-restore behaviour degrade to "retype the bare letters"
// rather than the true original keystrokes, a documented limitation.
func (e *Engine) RestoreWord(word string) {
	e.fullClear()
	for _, r := range word {
		key, caps, tone, mark, ok := chartable.Parse(r)
		if !ok {
			continue
		}
		code, ok := keycode.FromRune(key)
		if !ok {
			continue
		}
		stroke := chartable.IsStroke(r)
		e.buffer.Append(Char{Key: code, Caps: caps, Tone: tone, Mark: mark, Stroke: stroke})
		e.raw.Push(Keystroke{Key: code, Caps: caps})
	}
}
