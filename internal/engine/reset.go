package engine

// hardReset clears everything born at word start and dying at word
// boundary: buffer, raw-input, last transform, is-english-word, and the
// non-letter-prefix guard. Configuration and word-history are untouched.
func (e *Engine) hardReset() {
	e.buffer.Clear()
	e.raw.Clear()
	e.lastTransform = Transform{}
	e.isEnglishWord = false
	e.hasNonLetterPrefix = false
}

// fullClear additionally empties word-history and the trailing-character
// counters; used when the host signals cursor discontinuity.
func (e *Engine) fullClear() {
	e.hardReset()
	e.history.Clear()
	e.spacesAfterCommit = 0
	e.breakAfterCommit = 0
}

// FullClear is the host-facing entry point for cursor discontinuity
// (mouse click, focus change, selection-delete).
func (e *Engine) FullClear() {
	e.fullClear()
}
