package engine

// Buffer is the in-flight syllable: an ordered, bounded run of Chars
// between word boundaries. It is cleared on commit (word boundary or
// break key) and rebuilt one Char at a time as keys arrive.
type Buffer struct {
	cells [BufferCap]Char
	n     int
}

// Len reports how many Chars are currently buffered.
func (b *Buffer) Len() int { return b.n }

// At returns the Char at index i (0-based, oldest first).
func (b *Buffer) At(i int) Char { return b.cells[i] }

// Last returns the most recently appended Char and true, or the zero
// value and false if the buffer is empty.
func (b *Buffer) Last() (Char, bool) {
	if b.n == 0 {
		return Char{}, false
	}
	return b.cells[b.n-1], true
}

// Append adds c to the end of the buffer, silently dropping it if the
// buffer is already at capacity (a pathological case — real syllables
// never approach BufferCap).
func (b *Buffer) Append(c Char) {
	if b.n >= BufferCap {
		return
	}
	b.cells[b.n] = c
	b.n++
}

// Set overwrites the Char at index i in place (used by modifier
// application: a tone/mark/stroke changes a cell without shifting others).
func (b *Buffer) Set(i int, c Char) {
	if i < 0 || i >= b.n {
		return
	}
	b.cells[i] = c
}

// Truncate drops the last n Chars.
func (b *Buffer) Truncate(n int) {
	b.n -= n
	if b.n < 0 {
		b.n = 0
	}
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.n = 0
}

// Glyphs renders the buffer to its current on-screen form.
func (b *Buffer) Glyphs() []rune {
	out := make([]rune, 0, b.n)
	for i := 0; i < b.n; i++ {
		out = append(out, b.cells[i].Glyph())
	}
	return out
}

// Cells returns a copy of the buffered Chars.
func (b *Buffer) Cells() []Char {
	out := make([]Char, b.n)
	copy(out, b.cells[:b.n])
	return out
}

// LastVowelIndex returns the index of the rightmost vowel Char (by bare
// Latin letter a/e/i/o/u/y), or -1 if none.
func (b *Buffer) LastVowelIndex() int {
	for i := b.n - 1; i >= 0; i-- {
		if isVowelKey(b.cells[i].Key) {
			return i
		}
	}
	return -1
}

// VowelIndices returns, in order, the indices of every vowel Char.
func (b *Buffer) VowelIndices() []int {
	var idx []int
	for i := 0; i < b.n; i++ {
		if isVowelKey(b.cells[i].Key) {
			idx = append(idx, i)
		}
	}
	return idx
}
