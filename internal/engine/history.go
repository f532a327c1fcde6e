package engine

// snapshot is one entry of the word-history stack: a frozen copy of the
// buffer and raw-input ring as they stood at a word-boundary commit.
type snapshot struct {
	buffer Buffer
	raw    RawInput
}

// WordHistory is the bounded LIFO of (Buffer, RawInputRing) snapshots
// pushed on word-boundary commit and popped by the backspace-after-space
// mechanism. Capacity HistoryCap; pushing past capacity evicts the oldest
// entry (the bottom of the stack), since a commit in progress is always
// more valuable to keep than one eight words back.
type WordHistory struct {
	entries [HistoryCap]snapshot
	n       int
}

// Len reports how many snapshots are stored.
func (h *WordHistory) Len() int { return h.n }

// Push stores a new snapshot on top of the stack.
func (h *WordHistory) Push(b Buffer, r RawInput) {
	if h.n == HistoryCap {
		copy(h.entries[:], h.entries[1:])
		h.entries[HistoryCap-1] = snapshot{buffer: b, raw: r}
		return
	}
	h.entries[h.n] = snapshot{buffer: b, raw: r}
	h.n++
}

// Pop removes and returns the top snapshot, or false if the stack is empty.
func (h *WordHistory) Pop() (Buffer, RawInput, bool) {
	if h.n == 0 {
		return Buffer{}, RawInput{}, false
	}
	h.n--
	top := h.entries[h.n]
	return top.buffer, top.raw, true
}

// Clear empties the stack (full clear, and set_enabled(false)).
func (h *WordHistory) Clear() {
	h.n = 0
}
