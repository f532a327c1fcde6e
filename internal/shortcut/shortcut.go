// Package shortcut implements the abbreviation-expansion table of
// spec.md §4.5: a bounded, longest-match-first mapping from a trigger
// string to a Vietnamese replacement, gated by input method and trigger
// condition. Grounded on
// _examples/original_source/core/src/features/shortcut.rs, generalised
// from its HashMap+sorted-triggers design to the same shape in Go.
package shortcut

// Method restricts a shortcut to one input method, or lets it apply to all.
type Method int

const (
	MethodAll Method = iota
	MethodTelex
	MethodVNI
)

// Applies reports whether a shortcut registered for m applies when the
// engine is currently configured for query.
func (m Method) Applies(query Method) bool {
	if m == MethodAll {
		return true
	}
	return m == query || query == MethodAll
}

// Condition is when a shortcut fires.
type Condition int

const (
	Immediate Condition = iota
	OnWordBoundary
)

// CaseMode controls how the replacement's case follows the trigger's.
type CaseMode int

const (
	Exact CaseMode = iota
	MatchCase
)

// MaxReplacementLen is the spec.md §4.5 cap on replacement length.
const MaxReplacementLen = 63

// MaxShortcuts is the spec.md §4.5 cap on table size.
const MaxShortcuts = 200

// Shortcut is a single trigger/replacement entry.
type Shortcut struct {
	Trigger     string
	Replacement string
	Condition   Condition
	CaseMode    CaseMode
	Enabled     bool
	Method      Method
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// New creates a word-boundary, exact-case, all-methods shortcut — the
// ordinary "type 'vn' then space" abbreviation.
func New(trigger, replacement string) Shortcut {
	return Shortcut{
		Trigger:     trigger,
		Replacement: truncate(replacement, MaxReplacementLen),
		Condition:   OnWordBoundary,
		CaseMode:    Exact,
		Enabled:     true,
		Method:      MethodAll,
	}
}

// NewImmediate creates a shortcut that fires as soon as the buffer equals
// the trigger, with no word-boundary key required.
func NewImmediate(trigger, replacement string) Shortcut {
	s := New(trigger, replacement)
	s.Condition = Immediate
	return s
}

// Telex creates an immediate, Telex-only shortcut.
func Telex(trigger, replacement string) Shortcut {
	s := NewImmediate(trigger, replacement)
	s.Method = MethodTelex
	return s
}

// VNI creates an immediate, VNI-only shortcut.
func VNI(trigger, replacement string) Shortcut {
	s := NewImmediate(trigger, replacement)
	s.Method = MethodVNI
	return s
}

// ForMethod restricts an existing shortcut value to a specific method.
func (s Shortcut) ForMethod(m Method) Shortcut {
	s.Method = m
	return s
}
