package english

// Decision is the instant-restore decider's verdict (spec.md §4.3.4).
type Decision int

const (
	KeepVietnamese Decision = iota
	RestoreEnglish
)

// Decide implements the decision table of spec.md §4.3.4. vietnameseValid
// is the current buffer's verdict from the Vietnamese syllable validator;
// dictHit is dictionary membership of the raw input; phoneticConfidence is
// the 0..100 score from Confidence.
func Decide(vietnameseValid, dictHit bool, phoneticConfidence int) Decision {
	if vietnameseValid {
		if dictHit && phoneticConfidence >= 80 {
			return RestoreEnglish
		}
		return KeepVietnamese
	}
	// vietnameseValid == false
	if phoneticConfidence >= 60 {
		return RestoreEnglish
	}
	if dictHit {
		return RestoreEnglish
	}
	return KeepVietnamese
}

// ShortWordThreshold is the named constant spec.md §9 leaves as an open
// question: the phonotactic-confidence threshold required to restore a
// buffer of at most 2 characters whose raw form is not an English
// dictionary entry. We pick the conservative value (95) documented in
// DESIGN.md, since a 2-character word is cheap to type again but expensive
// to get wrong by silently discarding a half-typed Vietnamese tone.
const ShortWordThreshold = 95
