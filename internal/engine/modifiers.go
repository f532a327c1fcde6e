package engine

import (
	"unicode"

	"github.com/username/goviet-ime/internal/chartable"
	"github.com/username/goviet-ime/internal/english"
	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/phonology"
	"github.com/username/goviet-ime/internal/shortcut"
)

// processLetterOrNumber implements spec.md §4.1.4, the modifier pipeline
// entered for every letter/number key that wasn't a break key. shiftNumber
// mirrors "shift && is_number bypassing modifiers".
func (e *Engine) processLetterOrNumber(key keycode.Code, caps, shiftNumber bool) EditDelta {
	// Once the word is locked English (spec.md §4.3.5), every remaining
	// keystroke passes through raw: no double-press revert, no modifier
	// interpretation.
	if e.isEnglishWord {
		return e.appendNormalLetter(key, caps)
	}

	// (a) double-press revert detection.
	if e.lastTransform.Key == key && e.lastTransform.Kind != TransformNone && e.lastTransform.Kind != TransformWAsVowel {
		if delta, ok := e.revert(key, caps); ok {
			return delta
		}
	}

	if shiftNumber {
		return e.appendNormalLetter(key, caps)
	}

	// (b), first sub-rule: a word-initial F/J/Z is never a Vietnamese
	// onset, regardless of what the method would otherwise classify it
	// as (Telex maps F/J to grave/dot marks, Z to remove).
	if e.config.Method != MethodPassthrough && e.raw.Len() == 1 && english.FJZInitial(key) {
		e.isEnglishWord = true
		return e.appendNormalLetter(key, caps)
	}

	mod := e.method.Classify(key)

	// (b), remaining sub-rules: only when the key is not itself a
	// modifier candidate — a key that could legitimately act as a
	// Vietnamese modifier is given that interpretation first.
	if mod.Kind == ModNone && e.config.Method != MethodPassthrough {
		if e.englishPreLock(key, caps) {
			if e.config.InstantRestoreEnabled && e.hasAnyTransform() && e.dictHit() {
				return e.instantRestore()
			}
			return e.appendNormalLetter(key, caps)
		}
	}

	switch mod.Kind {
	case ModStroke:
		if delta, ok := e.applyStroke(key, caps); ok {
			return delta
		}
	case ModTone:
		if delta, ok := e.applyTone(key, caps, mod.Tone); ok {
			return delta
		}
	case ModMark:
		if delta, ok := e.applyMark(key, caps, mod.Mark); ok {
			return delta
		}
	case ModRemove:
		if delta, ok := e.applyRemove(key, caps); ok {
			return delta
		}
	case ModWAsVowel:
		if delta, ok := e.applyWAsVowel(caps); ok {
			return delta
		}
	}
	return e.appendNormalLetter(key, caps)
}

// englishPreLock implements the rest of spec.md §4.1.4(b) after the
// first-key F/J/Z check in processLetterOrNumber: the dictionary/phonotactic
// lookahead for plain letters that can't themselves act as a modifier,
// from the second keystroke on. raw-input already contains the current
// keystroke (recorded by the top-level dispatch before entering the
// pipeline).
func (e *Engine) englishPreLock(key keycode.Code, caps bool) bool {
	raw := e.raw.Slice()
	if len(raw) < 2 {
		return false
	}
	if e.dictHit() {
		e.isEnglishWord = true
		return true
	}
	if e.phoneticConfidence() >= 50 {
		e.isEnglishWord = true
		return true
	}
	return false
}

// applyStroke implements spec.md §4.1.4(c).
func (e *Engine) applyStroke(key keycode.Code, caps bool) (EditDelta, bool) {
	target := e.strokeTarget()
	if target < 0 {
		return EditDelta{}, false
	}
	before := e.buffer.Cells()
	c := e.buffer.At(target)
	c.Stroke = true
	e.buffer.Set(target, c)

	// The syllable is only validated when a vowel precedes the D; a
	// bare onset such as "dd" strokes unconditionally.
	vowelBefore := false
	for i := 0; i < target; i++ {
		if keycode.IsVowel(before[i].Key) {
			vowelBefore = true
			break
		}
	}
	if vowelBefore && !validateCells(e.buffer.Cells(), e.config.FreeToneEnabled) {
		restoreCells(e, before)
		return EditDelta{}, false
	}
	e.lastTransform = Transform{Kind: TransformStroke, Key: key}
	return e.rebuildFrom(target), true
}

func (e *Engine) strokeTarget() int {
	cells := e.buffer.Cells()
	if e.config.Method == MethodTelex {
		last, ok := e.buffer.Last()
		if ok && last.Key == keycode.KeyD && !last.Stroke {
			return e.buffer.Len() - 1
		}
		return -1
	}
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i].Key == keycode.KeyD && !cells[i].Stroke {
			return i
		}
	}
	return -1
}

// applyTone implements spec.md §4.1.4(d): circumflex (telex doubling and
// vni digit), horn, and breve.
func (e *Engine) applyTone(key keycode.Code, caps bool, tone phonology.Tone) (EditDelta, bool) {
	target := e.toneTarget(key, tone)
	if target < 0 {
		return EditDelta{}, false
	}
	before := e.buffer.Cells()
	c := e.buffer.At(target)
	c.Tone = tone
	e.buffer.Set(target, c)

	if tone == phonology.ToneHorn {
		e.applyHornCompound(target)
	}

	if !validateCells(e.buffer.Cells(), e.config.FreeToneEnabled) {
		restoreCells(e, before)
		if delta, ok := e.maybeRestore(); ok {
			return delta, true
		}
		return EditDelta{}, false
	}
	e.lastTransform = Transform{Kind: TransformTone, Key: key, Tone: tone}
	return e.rebuildFrom(0), true
}

func restoreCells(e *Engine, cells []Char) {
	for i, c := range cells {
		e.buffer.Set(i, c)
	}
}

// hasAnyTransform reports whether any buffered Char carries a tone, mark,
// or stroke — i.e. whether instant-restore would have anything to undo.
func (e *Engine) hasAnyTransform() bool {
	for i := 0; i < e.buffer.Len(); i++ {
		c := e.buffer.At(i)
		if c.Tone != phonology.ToneNone || c.Mark != phonology.MarkNone || c.Stroke {
			return true
		}
	}
	return false
}

// toneTarget finds the buffer index a tone modifier should apply to.
// For telex a/e/o circumflex-doubling, the candidate must share the key's
// base letter; adjacency is preferred but backward placement over a final
// consonant is permitted ("cam"+a -> "câm"). For vni digits, any
// toneless vowel matching the tone's eligible base letters is a candidate,
// rightmost first.
func (e *Engine) toneTarget(key keycode.Code, tone phonology.Tone) int {
	cells := e.buffer.Cells()
	if e.config.Method == MethodTelex && tone == phonology.ToneCircumflex {
		base, _ := keycode.ToRune(key, false)
		if n := len(cells); n > 0 {
			last := cells[n-1]
			lb, _ := keycode.ToRune(last.Key, false)
			if lb == base && last.Tone == phonology.ToneNone {
				return n - 1
			}
			if n >= 2 && keycode.IsConsonant(last.Key) {
				prev := cells[n-2]
				pb, _ := keycode.ToRune(prev.Key, false)
				if pb == base && prev.Tone == phonology.ToneNone {
					return n - 2
				}
			}
		}
		return -1
	}

	eligible := eligibleBasesForTone(tone)
	for i := len(cells) - 1; i >= 0; i-- {
		if !keycode.IsVowel(cells[i].Key) || cells[i].Tone != phonology.ToneNone {
			continue
		}
		b, _ := keycode.ToRune(cells[i].Key, false)
		if eligible[b] {
			return i
		}
	}
	return -1
}

func eligibleBasesForTone(tone phonology.Tone) map[rune]bool {
	switch tone {
	case phonology.ToneCircumflex:
		return map[rune]bool{'a': true, 'e': true, 'o': true}
	case phonology.ToneHorn:
		return map[rune]bool{'o': true, 'u': true}
	case phonology.ToneBreve:
		return map[rune]bool{'a': true}
	default:
		return nil
	}
}

// applyHornCompound implements spec.md §4.2.4: when horn lands on one half
// of a u-o pair, the other half must carry horn too.
func (e *Engine) applyHornCompound(target int) {
	shape, ok := shapeOf(e.buffer.Cells())
	if !ok {
		return
	}
	localIdx := -1
	baseNucleus := make([]rune, len(shape.nucleusIdx))
	for i, idx := range shape.nucleusIdx {
		b, _ := keycode.ToRune(e.buffer.At(idx).Key, false)
		baseNucleus[i] = b
		if idx == target {
			localIdx = i
		}
	}
	if localIdx < 0 {
		return
	}
	for _, li := range phonology.HornTargets(baseNucleus, localIdx) {
		idx := shape.nucleusIdx[li]
		c := e.buffer.At(idx)
		c.Tone = phonology.ToneHorn
		e.buffer.Set(idx, c)
	}
}

// applyMark implements spec.md §4.1.4(e).
func (e *Engine) applyMark(key keycode.Code, caps bool, mark phonology.Mark) (EditDelta, bool) {
	target, ok := e.markTargetIndex()
	if !ok {
		return EditDelta{}, false
	}
	before := e.buffer.Cells()
	c := e.buffer.At(target)
	c.Mark = mark
	e.buffer.Set(target, c)

	if !validateCells(e.buffer.Cells(), e.config.FreeToneEnabled) {
		restoreCells(e, before)
		if delta, ok := e.maybeRestore(); ok {
			return delta, true
		}
		return EditDelta{}, false
	}
	e.lastTransform = Transform{Kind: TransformMark, Key: key, Mark: mark}
	return e.rebuildFrom(0), true
}

// applyRemove implements spec.md §4.1.4(f): strip the most recently
// applied mark or tone from the rightmost affected vowel.
func (e *Engine) applyRemove(key keycode.Code, caps bool) (EditDelta, bool) {
	cells := e.buffer.Cells()
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if c.Mark != phonology.MarkNone {
			c.Mark = phonology.MarkNone
			e.buffer.Set(i, c)
			e.lastTransform = Transform{Kind: TransformMark, Key: key}
			return e.rebuildFrom(0), true
		}
	}
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if c.Tone != phonology.ToneNone {
			c.Tone = phonology.ToneNone
			e.buffer.Set(i, c)
			e.lastTransform = Transform{Kind: TransformTone, Key: key}
			return e.rebuildFrom(0), true
		}
	}
	return EditDelta{}, false
}

// applyWAsVowel implements spec.md §4.1.4(g), telex-only. Beyond the
// breve-on-a case spec.md's prose spells out, 'w' is also the telex horn
// key: an un-toned trailing o or u takes horn in place (mơ, sương, hươu),
// grounded on the teacher's telexHornPatterns table (telex.go).
func (e *Engine) applyWAsVowel(caps bool) (EditDelta, bool) {
	if last, ok := e.buffer.Last(); ok {
		lb, _ := keycode.ToRune(last.Key, false)
		switch {
		case lb == 'a' && last.Tone == phonology.ToneNone:
			c := last
			c.Tone = phonology.ToneBreve
			e.buffer.Set(e.buffer.Len()-1, c)
			e.lastTransform = Transform{Kind: TransformWAsVowel, Key: keycode.KeyW}
			return e.rebuildFrom(e.buffer.Len() - 1), true
		case lb == 'a' && last.Tone == phonology.ToneBreve:
			c := last
			c.Tone = phonology.ToneNone
			e.buffer.Set(e.buffer.Len()-1, c)
			e.lastTransform = Transform{}
			return e.rebuildFrom(e.buffer.Len() - 1), true
		case (lb == 'o' || lb == 'u') && last.Tone == phonology.ToneNone:
			target := e.buffer.Len() - 1
			before := e.buffer.Cells()
			c := last
			c.Tone = phonology.ToneHorn
			e.buffer.Set(target, c)
			e.applyHornCompound(target)
			if !validateCells(e.buffer.Cells(), e.config.FreeToneEnabled) {
				restoreCells(e, before)
				return EditDelta{}, false
			}
			e.lastTransform = Transform{Kind: TransformWAsVowel, Key: keycode.KeyW}
			return e.rebuildFrom(0), true
		case (lb == 'o' || lb == 'u') && last.Tone == phonology.ToneHorn:
			c := last
			c.Tone = phonology.ToneNone
			e.buffer.Set(e.buffer.Len()-1, c)
			e.lastTransform = Transform{}
			return e.rebuildFrom(0), true
		}
	}

	// No adjacent a/o/u to modify: append ư as a brand new vowel,
	// tentatively, then validate. With SkipWShortcut set, a w that starts
	// a word stays a plain letter instead.
	if e.config.SkipWShortcut && e.buffer.Len() == 0 {
		return EditDelta{}, false
	}
	before := e.buffer.Cells()
	from := e.buffer.Len()
	e.buffer.Append(Char{Key: keycode.KeyU, Caps: caps, Tone: phonology.ToneHorn})
	if !validateCells(e.buffer.Cells(), e.config.FreeToneEnabled) {
		e.buffer.Truncate(1)
		restoreCells(e, before)
		return EditDelta{}, false
	}
	e.lastTransform = Transform{Kind: TransformWAsVowel, Key: keycode.KeyW}
	return e.rebuildFromAfterInsert(from), true
}

// appendNormalLetter implements spec.md §4.1.4(h).
func (e *Engine) appendNormalLetter(key keycode.Code, caps bool) EditDelta {
	from := e.buffer.Len()

	if key == keycode.KeyO && e.lastTransform.Kind == TransformWAsVowel {
		if last, ok := e.buffer.Last(); ok {
			lb, _ := keycode.ToRune(last.Key, false)
			if lb == 'u' && last.Tone == phonology.ToneHorn {
				e.buffer.Append(Char{Key: keycode.KeyO, Caps: caps, Tone: phonology.ToneHorn})
				e.lastTransform = Transform{}
				e.reevaluateEnglish()
				if delta, ok := e.checkImmediateShortcut(from); ok {
					return delta
				}
				return e.rebuildFromAfterInsert(from)
			}
		}
	}

	e.buffer.Append(Char{Key: key, Caps: caps})
	e.normalizeUO()
	e.repositionMark()
	e.reevaluateEnglish()
	if delta, ok := e.checkImmediateShortcut(from); ok {
		return delta
	}
	return e.rebuildFromAfterInsert(from)
}

// checkImmediateShortcut implements spec.md §4.5's Immediate condition: an
// enabled Immediate shortcut fires the instant the buffer equals its
// trigger, on the very keystroke that completes it, independent of any
// word-boundary key — unlike OnWordBoundary shortcuts, which
// commitWordBoundary alone renders. from is the buffer length (== screen
// length) before the letter this call is reacting to was appended, so the
// whole prior render can be replaced along with the new letter.
func (e *Engine) checkImmediateShortcut(from int) (EditDelta, bool) {
	if !e.config.ShortcutsEnabled || e.hasNonLetterPrefix || e.isEnglishWord {
		return EditDelta{}, false
	}
	bufStr := string(e.buffer.Glyphs())
	if bufStr == "" {
		return EditDelta{}, false
	}
	s, text, ok := e.shortcuts.Render(bufStr, shortcutMethodQuery(e.config.Method))
	if !ok || s.Condition != shortcut.Immediate {
		return EditDelta{}, false
	}

	e.buffer.Clear()
	for _, r := range text {
		k, caps, tone, mark, ok := chartable.Parse(r)
		if !ok {
			continue
		}
		code, ok := keycode.FromRune(k)
		if !ok {
			continue
		}
		e.buffer.Append(Char{Key: code, Caps: caps, Tone: tone, Mark: mark, Stroke: chartable.IsStroke(r)})
	}
	e.lastTransform = Transform{}
	return consume(from, []rune(text)), true
}

// normalizeUO runs the uo->ươ compound normalisation (§4.2.3) over the
// whole buffer after a plain letter append.
func (e *Engine) normalizeUO() {
	shape, ok := shapeOf(e.buffer.Cells())
	if !ok {
		return
	}
	nucleusRunes := []rune(shape.nucleus)
	rewritten, changed := phonology.NormalizeUOHorn(nucleusRunes)
	if !changed {
		return
	}
	for i, idx := range shape.nucleusIdx {
		c := e.buffer.At(idx)
		base, _ := keycode.ToRune(c.Key, false)
		if unicode.ToLower(rewritten[i]) != base {
			c.Tone = phonology.ToneHorn
			e.buffer.Set(idx, c)
		}
	}
}

// repositionMark re-runs the mark-placement rule and relocates the mark if
// adding a letter shifted the correct target (e.g. a new final consonant
// moves the mark from the first vowel to the second).
func (e *Engine) repositionMark() {
	cells := e.buffer.Cells()
	markedAt := -1
	var mark phonology.Mark
	for i, c := range cells {
		if c.Mark != phonology.MarkNone {
			markedAt = i
			mark = c.Mark
			break
		}
	}
	if markedAt < 0 {
		return
	}
	target, ok := e.markTargetIndex()
	if !ok || target == markedAt {
		return
	}
	c := e.buffer.At(markedAt)
	c.Mark = phonology.MarkNone
	e.buffer.Set(markedAt, c)
	nc := e.buffer.At(target)
	nc.Mark = mark
	e.buffer.Set(target, nc)
}

// reevaluateEnglish implements the tail of §4.1.4(h): it re-checks
// is_english_word after a plain letter is appended and sets the flag on an
// exact dictionary hit or a phonotactic confidence of 95 or more. It only
// sets the flag: no restore edit is produced here, and because a word
// marked English passes its later keys through raw, transforms already on
// screen stay as they are.
func (e *Engine) reevaluateEnglish() {
	if e.config.Method == MethodPassthrough || e.isEnglishWord {
		return
	}
	if e.suppressEnglish() {
		return
	}
	hit := e.dictHit()
	conf := e.phoneticConfidence()
	if hit || conf >= 95 {
		e.isEnglishWord = true
	}
}
