package english

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideValidVietnameseKeptUnlessStrongDictHit(t *testing.T) {
	assert.Equal(t, KeepVietnamese, Decide(true, false, 0))
	assert.Equal(t, KeepVietnamese, Decide(true, true, 79))
	assert.Equal(t, RestoreEnglish, Decide(true, true, 80))
}

func TestDecideInvalidVietnameseRestoresOnConfidenceOrDict(t *testing.T) {
	assert.Equal(t, RestoreEnglish, Decide(false, false, 60))
	assert.Equal(t, RestoreEnglish, Decide(false, true, 0))
	assert.Equal(t, KeepVietnamese, Decide(false, false, 59))
}

func TestDictionaryExactAndPrefixMatch(t *testing.T) {
	assert.True(t, InDictionary(keystrokes("test")))
	assert.True(t, InDictionary(keystrokes("tes")))
	assert.True(t, ExactDictionaryMatch(keystrokes("test")))
	assert.False(t, ExactDictionaryMatch(keystrokes("tes")))
}

func TestDictionaryNoMatch(t *testing.T) {
	assert.False(t, InDictionary(keystrokes("zzzz")))
	assert.False(t, InDictionary(nil))
}
