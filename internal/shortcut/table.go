package shortcut

import "sort"

// Table is the shortcut map: triggers are matched longest-first so that
// e.g. "vnese" doesn't shadow a more specific "vn" entry ambiguously —
// the longest trigger that exactly equals the buffer always wins.
type Table struct {
	byTrigger map[string]Shortcut
	sorted    []string // triggers, longest first; rebuilt on mutation
}

// NewTable returns an empty shortcut table.
func NewTable() *Table {
	return &Table{byTrigger: make(map[string]Shortcut)}
}

// Len reports how many shortcuts are stored.
func (t *Table) Len() int { return len(t.byTrigger) }

// IsAtCapacity reports whether the table already holds MaxShortcuts
// entries.
func (t *Table) IsAtCapacity() bool { return len(t.byTrigger) >= MaxShortcuts }

// Capacity returns the table's maximum size.
func (t *Table) Capacity() int { return MaxShortcuts }

// Add inserts or replaces a shortcut. Returns false if the table is at
// capacity and trigger is not already present.
func (t *Table) Add(s Shortcut) bool {
	if _, exists := t.byTrigger[s.Trigger]; !exists && t.IsAtCapacity() {
		return false
	}
	s.Replacement = truncate(s.Replacement, MaxReplacementLen)
	t.byTrigger[s.Trigger] = s
	t.resort()
	return true
}

// Remove deletes a shortcut by exact trigger, returning it if present.
func (t *Table) Remove(trigger string) (Shortcut, bool) {
	s, ok := t.byTrigger[trigger]
	if !ok {
		return Shortcut{}, false
	}
	delete(t.byTrigger, trigger)
	t.resort()
	return s, true
}

// Clear empties the table.
func (t *Table) Clear() {
	t.byTrigger = make(map[string]Shortcut)
	t.sorted = nil
}

func (t *Table) resort() {
	t.sorted = t.sorted[:0]
	for trig := range t.byTrigger {
		t.sorted = append(t.sorted, trig)
	}
	sort.Slice(t.sorted, func(i, j int) bool {
		if len(t.sorted[i]) != len(t.sorted[j]) {
			return len(t.sorted[i]) > len(t.sorted[j])
		}
		return t.sorted[i] < t.sorted[j]
	})
}

// Lookup finds the enabled shortcut whose trigger exactly equals buffer
// and whose Method applies to query, longest trigger first (moot for an
// exact match, but kept for parity with the source's matching discipline).
func (t *Table) Lookup(buffer string, query Method) (Shortcut, bool) {
	for _, trig := range t.sorted {
		if trig != buffer {
			continue
		}
		s := t.byTrigger[trig]
		if s.Enabled && s.Method.Applies(query) {
			return s, true
		}
	}
	return Shortcut{}, false
}

// Render looks up buffer and, if found, returns the shortcut together with
// its replacement text after case-mode transformation.
func (t *Table) Render(buffer string, query Method) (Shortcut, string, bool) {
	s, ok := t.Lookup(buffer, query)
	if !ok {
		return Shortcut{}, "", false
	}
	return s, applyCase(s.Trigger, s.Replacement, s.CaseMode), true
}

// ExportAll returns every (trigger, replacement) pair in the table.
func (t *Table) ExportAll() [][2]string {
	out := make([][2]string, 0, len(t.byTrigger))
	for trig, s := range t.byTrigger {
		out = append(out, [2]string{trig, s.Replacement})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// ImportAll adds (trigger, replacement) pairs as OnWordBoundary/Exact/All
// shortcuts, stopping (without error) at the first capacity failure and
// returning how many were actually imported.
func (t *Table) ImportAll(pairs [][2]string) int {
	n := 0
	for _, p := range pairs {
		if !t.Add(New(p[0], p[1])) {
			break
		}
		n++
	}
	return n
}

// applyCase renders replacement following trigger's case shape, per
// spec.md §4.5 "match-case up-cases or title-cases the replacement".
func applyCase(trigger, replacement string, mode CaseMode) string {
	if mode == Exact {
		return replacement
	}
	if trigger == "" {
		return replacement
	}
	if isAllUpper(trigger) {
		return toUpper(replacement)
	}
	if isFirstUpper(trigger) {
		return titleFirst(replacement)
	}
	return replacement
}
