package engine

// rebuildFrom builds the edit delta for a mutation that changed the
// rendering of existing on-screen cells in place (tone/mark/stroke
// application, revert) without changing the cell count: backspace count
// equals the number of screen characters from `from` to the end, which is
// the same before and after the mutation.
func (e *Engine) rebuildFrom(from int) EditDelta {
	n := e.buffer.Len() - from
	if n < 0 {
		n = 0
	}
	return consume(n, e.buffer.Glyphs()[from:])
}

// rebuildFromAfterInsert builds the edit delta for a mutation that just
// appended a new cell not yet reflected on screen: the pre-mutation screen
// length at `from` was one cell shorter.
func (e *Engine) rebuildFromAfterInsert(from int) EditDelta {
	n := (e.buffer.Len() - 1) - from
	if n < 0 {
		n = 0
	}
	return consume(n, e.buffer.Glyphs()[from:])
}
