package phonology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMarkPositionOAOEUYPair(t *testing.T) {
	t.Run("modern keeps the mark on the first vowel", func(t *testing.T) {
		assert.Equal(t, 0, FindMarkPosition([]rune("oa"), false, true, false, false))
		assert.Equal(t, 0, FindMarkPosition([]rune("oe"), false, true, false, false))
		assert.Equal(t, 0, FindMarkPosition([]rune("uy"), false, true, false, false))
	})

	t.Run("traditional moves the mark to the second vowel", func(t *testing.T) {
		assert.Equal(t, 1, FindMarkPosition([]rune("oa"), false, false, false, false))
		assert.Equal(t, 1, FindMarkPosition([]rune("oe"), false, false, false, false))
		assert.Equal(t, 1, FindMarkPosition([]rune("uy"), false, false, false, false))
	})
}

func TestFindMarkPositionWithCoda(t *testing.T) {
	// A final consonant always pulls the mark onto the last nucleus vowel,
	// regardless of the modern/traditional setting.
	assert.Equal(t, 1, FindMarkPosition([]rune("ie"), true, true, false, false))
	assert.Equal(t, 1, FindMarkPosition([]rune("ie"), true, false, false, false))
}

func TestFindMarkPositionDiacriticVowelWins(t *testing.T) {
	// â/ê/ô/ơ/ư/ă is always the sonority peak, regardless of position.
	assert.Equal(t, 1, FindMarkPosition([]rune("uâ"), false, true, false, false))
	assert.Equal(t, 1, FindMarkPosition([]rune("ươ"), false, true, false, false))
}

func TestFindMarkPositionIAAndUA(t *testing.T) {
	assert.Equal(t, 0, FindMarkPosition([]rune("ia"), false, true, false, false))
	assert.Equal(t, 0, FindMarkPosition([]rune("ua"), false, true, false, false))
	assert.Equal(t, 0, FindMarkPosition([]rune("ưa"), false, true, false, false))
}

func TestFindMarkPositionQuAndGiInitial(t *testing.T) {
	// "qu" consumes the leading u from the nucleus; the mark lands as if
	// only the remaining vowel(s) existed.
	assert.Equal(t, 1, FindMarkPosition([]rune("uy"), false, true, true, false))
	// "gi" likewise consumes a leading i when more than one vowel follows.
	assert.Equal(t, 1, FindMarkPosition([]rune("ia"), false, true, false, true))
}

func TestFindMarkPositionSingleVowel(t *testing.T) {
	assert.Equal(t, 0, FindMarkPosition([]rune("a"), false, true, false, false))
	assert.Equal(t, 0, FindMarkPosition([]rune("a"), true, true, false, false))
}

func TestResolveModernToneAutoIsModern(t *testing.T) {
	assert.True(t, ResolveModernTone(ToneRuleAuto))
	assert.True(t, ResolveModernTone(ToneRuleModern))
	assert.False(t, ResolveModernTone(ToneRuleTraditional))
}
