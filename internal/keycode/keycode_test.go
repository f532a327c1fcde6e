package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRuneRoundTrip(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		key, ok := FromRune(r)
		assert.True(t, ok)
		lower, ok := ToRune(key, false)
		assert.True(t, ok)
		assert.Equal(t, r, lower)
		upper, ok := ToRune(key, true)
		assert.True(t, ok)
		assert.Equal(t, r-('a'-'A'), upper)
	}
}

func TestFromRuneIgnoresCase(t *testing.T) {
	lowerKey, ok := FromRune('v')
	assert.True(t, ok)
	upperKey, ok := FromRune('V')
	assert.True(t, ok)
	assert.Equal(t, lowerKey, upperKey)
}

func TestFromRuneDigits(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		key, ok := FromRune(r)
		assert.True(t, ok)
		assert.True(t, IsNumber(key))
		assert.False(t, IsLetter(key))
		back, ok := ToRune(key, false)
		assert.True(t, ok)
		assert.Equal(t, r, back)
	}
}

func TestFromRuneUnknown(t *testing.T) {
	_, ok := FromRune('!')
	assert.False(t, ok)
}

func TestIsVowelAndIsConsonant(t *testing.T) {
	vowels := "aeiouy"
	for _, r := range vowels {
		key, _ := FromRune(r)
		assert.Truef(t, IsVowel(key), "%c should be a vowel", r)
		assert.Falsef(t, IsConsonant(key), "%c should not be a consonant", r)
	}

	consonants := "bcdfghjklmnpqrstvwxz"
	for _, r := range consonants {
		key, _ := FromRune(r)
		assert.Truef(t, IsConsonant(key), "%c should be a consonant", r)
		assert.Falsef(t, IsVowel(key), "%c should not be a vowel", r)
	}
}

func TestIsBreak(t *testing.T) {
	assert.True(t, IsBreak(KeyComma))
	assert.True(t, IsBreak(KeyReturn))
	assert.True(t, IsBreak(KeyArrowLeft))
	assert.False(t, IsBreak(KeySpace))
	assert.False(t, IsBreak(KeyA))
}

func TestKeyNoneIsZeroValue(t *testing.T) {
	var zero Code
	assert.Equal(t, KeyNone, zero)
	assert.False(t, IsLetter(zero))
	assert.False(t, IsNumber(zero))
}
