package engine

import (
	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/shortcut"
)

// OnKey is the engine's single entry point (spec.md §6): interpret one
// raw keystroke, mutate buffer/raw-input/history/counters accordingly,
// and return the edit delta the host should apply. Dispatch order is
// strict per spec.md §4.1 and never re-enters OnKey.
func (e *Engine) OnKey(key keycode.Code, caps, ctrl, shift bool) EditDelta {
	if !e.config.Enabled || ctrl {
		e.hardReset()
		return Passthrough()
	}

	switch {
	case key == keycode.KeySpace:
		return e.commitWordBoundary()
	case key == keycode.KeyEsc:
		return e.onEscape()
	case key == keycode.KeyDelete:
		return e.handleDelete(shift)
	case e.isBreakKey(key):
		return e.commitAndBreak()
	}

	if keycode.IsLetter(key) || keycode.IsNumber(key) {
		e.raw.Push(Keystroke{Key: key, Caps: caps})
		shiftNumber := shift && keycode.IsNumber(key)
		return e.processLetterOrNumber(key, caps, shiftNumber)
	}

	return Passthrough()
}

// isBreakKey reports whether key terminates the current word: the
// keycode table's fixed break set, plus digits when the active method
// doesn't use them as modifiers (Telex digits are never modifiers; VNI
// digits are, so they instead flow into the modifier pipeline).
func (e *Engine) isBreakKey(key keycode.Code) bool {
	if keycode.IsBreak(key) {
		return true
	}
	return keycode.IsNumber(key) && !e.method.NumericModifiersOnly()
}

func shortcutMethodQuery(m Method) shortcut.Method {
	switch m {
	case MethodTelex:
		return shortcut.MethodTelex
	case MethodVNI:
		return shortcut.MethodVNI
	default:
		return shortcut.MethodAll
	}
}

// commitWordBoundary implements spec.md §4.1.1 (the SPACE key).
func (e *Engine) commitWordBoundary() EditDelta {
	bufStr := string(e.buffer.Glyphs())
	delta := Passthrough()

	if e.config.ShortcutsEnabled && !e.hasNonLetterPrefix && bufStr != "" {
		if s, text, ok := e.shortcuts.Render(bufStr, shortcutMethodQuery(e.config.Method)); ok {
			chars := []rune(text)
			if s.Condition == shortcut.OnWordBoundary {
				chars = append(chars, ' ')
			}
			delta = consume(len(e.buffer.Glyphs()), chars)
		}
	}

	if e.buffer.Len() > 0 {
		e.history.Push(e.buffer, e.raw)
		e.spacesAfterCommit = 1
		e.breakAfterCommit = 0
	} else {
		e.spacesAfterCommit++
	}
	e.hardReset()
	return delta
}

// onEscape implements spec.md §4.1 step 3.
func (e *Engine) onEscape() EditDelta {
	if !e.config.EscRestoreEnabled {
		e.hardReset()
		return Passthrough()
	}
	return e.escRestore()
}

// commitAndBreak implements spec.md §4.1.3.
func (e *Engine) commitAndBreak() EditDelta {
	switch {
	case e.buffer.Len() > 0:
		e.history.Push(e.buffer, e.raw)
		e.breakAfterCommit = 1
	case e.breakAfterCommit > 0:
		e.breakAfterCommit++
	default:
		e.history.Clear()
	}
	e.hardReset()
	return Passthrough()
}

// handleDelete implements spec.md §4.1.2.
func (e *Engine) handleDelete(shift bool) EditDelta {
	if shift {
		return e.deleteWholeWord()
	}

	if e.buffer.Len() == 0 {
		return e.deleteAcrossWordBoundary()
	}

	e.buffer.Truncate(1)
	e.raw.TruncateLast()
	e.lastTransform = Transform{}
	if e.buffer.Len() == 0 {
		e.isEnglishWord = false
		e.hasNonLetterPrefix = false
	}
	return Passthrough()
}

// deleteWholeWord implements the Shift+DELETE branch of spec.md §4.1.2.
func (e *Engine) deleteWholeWord() EditDelta {
	if e.buffer.Len() > 0 {
		n := len(e.buffer.Glyphs())
		e.hardReset()
		return consume(n, nil)
	}

	pending := e.spacesAfterCommit
	if pending == 0 {
		pending = e.breakAfterCommit
	}
	e.spacesAfterCommit = 0
	e.breakAfterCommit = 0

	if buf, _, ok := e.history.Pop(); ok && pending > 0 {
		return consume(pending+len(buf.Glyphs()), nil)
	}
	if pending > 0 {
		return consume(pending, nil)
	}
	e.hasNonLetterPrefix = true
	return Passthrough()
}

// deleteAcrossWordBoundary implements the empty-buffer branches of
// spec.md §4.1.2: popping one trailing space or break character back
// into an editable word, or falling through to the host.
func (e *Engine) deleteAcrossWordBoundary() EditDelta {
	if e.spacesAfterCommit > 0 {
		e.spacesAfterCommit--
		return e.restoreFromHistoryIfDrained(e.spacesAfterCommit == 0)
	}
	if e.breakAfterCommit > 0 {
		e.breakAfterCommit--
		return e.restoreFromHistoryIfDrained(e.breakAfterCommit == 0)
	}
	e.hasNonLetterPrefix = true
	return Passthrough()
}

func (e *Engine) restoreFromHistoryIfDrained(drained bool) EditDelta {
	if drained {
		if buf, raw, ok := e.history.Pop(); ok {
			e.buffer = buf
			e.raw = raw
		}
		e.isEnglishWord = false
	}
	return consume(1, nil)
}
