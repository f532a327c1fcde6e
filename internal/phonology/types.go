// Package phonology implements the Vietnamese syllable model and the
// phonotactic rules and validators of spec.md §4.2: onset/nucleus/coda
// decomposition, tone-mark placement, the uo→ươ compound normalisation,
// horn target selection, and the syllable validator consulted by the
// transformation state machine before committing a modifier.
//
// It is grounded on the teacher's internal/engine/validation.go and
// unicode.go (findTonePosition), generalised with the modern/traditional
// oa·uy split and qu-/gi- initial handling described in
// _examples/original_source/core/src/infrastructure/adapters/transformation/vietnamese_tone_adapter.rs.
package phonology

// Tone is the diacritic slot of a vowel: circumflex, horn, or breve.
// This is spec.md's "tone" (§3 Char cell) — not to be confused with the
// tonal accent, which this package calls Mark.
type Tone int

const (
	ToneNone Tone = iota
	ToneCircumflex
	ToneHorn
	ToneBreve
)

// Mark is the tonal-accent slot of a vowel: sắc/huyền/hỏi/ngã/nặng.
// This is spec.md's "mark" (§3 Char cell).
type Mark int

const (
	MarkNone Mark = iota
	MarkAcute
	MarkGrave
	MarkHook
	MarkTilde
	MarkDot
)

// Vowel is one nucleus position: its base Latin letter, case, and the
// Tone/Mark already applied to it. Position is its index within the
// nucleus, used only to report back where a mark should land.
type Vowel struct {
	Letter   rune
	Caps     bool
	Tone     Tone
	Position int
}
