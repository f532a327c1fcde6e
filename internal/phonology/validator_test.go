package phonology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSyllableValidShapes(t *testing.T) {
	cases := []struct {
		onset, nucleus, coda string
	}{
		{"v", "iê", "t"},
		{"ng", "uyê", "n"},
		{"ngh", "ia", ""},
		{"", "oai", ""},
		{"qu", "y", ""},
		{"tr", "ươ", "ng"},
	}
	for _, c := range cases {
		res := ValidateSyllable(c.onset, c.nucleus, c.coda)
		assert.Truef(t, res.Valid, "%s+%s+%s should validate, got reason %q", c.onset, c.nucleus, c.coda, res.Reason)
	}
}

func TestValidateSyllableInvalidOnset(t *testing.T) {
	res := ValidateSyllable("cl", "a", "")
	assert.False(t, res.Valid)
	assert.Equal(t, "invalid_initial", res.Reason)
}

func TestValidateSyllableInvalidCoda(t *testing.T) {
	res := ValidateSyllable("b", "a", "s")
	assert.False(t, res.Valid)
	assert.Equal(t, "invalid_final", res.Reason)
}

func TestValidateSyllableInvalidNucleus(t *testing.T) {
	// "ee" and "oo" are English vowel runs, never a legal Vietnamese nucleus.
	res := ValidateSyllable("r", "ee", "")
	assert.False(t, res.Valid)
	assert.Equal(t, "invalid_nucleus", res.Reason)

	res = ValidateSyllable("", "oo", "")
	assert.False(t, res.Valid)
}

func TestValidateSyllableNoVowel(t *testing.T) {
	res := ValidateSyllable("t", "", "")
	assert.False(t, res.Valid)
	assert.Equal(t, "no_vowel", res.Reason)
}

func TestValidateSyllableSpellingRule(t *testing.T) {
	// "ke" is the correct spelling; "ce" is never valid written Vietnamese.
	res := ValidateSyllable("c", "e", "")
	assert.False(t, res.Valid)
	assert.Equal(t, "spelling_rule_violation", res.Reason)
}

func TestValidateSyllableUOBareRejected(t *testing.T) {
	// "uơ" must first normalise to uô/ươ; it is never valid on its own.
	res := ValidateSyllable("h", "uơ", "")
	assert.False(t, res.Valid)
}

func TestValidateNucleusMarkBreveMustEndNucleus(t *testing.T) {
	assert.True(t, ValidateNucleusMark("a", ToneBreve, "n"))
	assert.False(t, ValidateNucleusMark("ai", ToneBreve, ""))
	assert.True(t, ValidateNucleusMark("ie", ToneNone, ""))
}
