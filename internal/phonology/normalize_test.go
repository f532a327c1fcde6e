package phonology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUOHornPromotesUOToCompound(t *testing.T) {
	out, changed := NormalizeUOHorn([]rune("ưo"))
	assert.True(t, changed)
	assert.Equal(t, "ươ", string(out))
}

func TestNormalizeUOHornInverse(t *testing.T) {
	out, changed := NormalizeUOHorn([]rune("uơ"))
	assert.True(t, changed)
	assert.Equal(t, "ươ", string(out))
}

func TestNormalizeUOHornPreservesCase(t *testing.T) {
	out, changed := NormalizeUOHorn([]rune("ưO"))
	assert.True(t, changed)
	assert.Equal(t, "ưƠ", string(out))
}

func TestNormalizeUOHornNoOp(t *testing.T) {
	out, changed := NormalizeUOHorn([]rune("uo"))
	assert.False(t, changed)
	assert.Equal(t, "uo", string(out))
}

func TestHornTargetsCompound(t *testing.T) {
	assert.Equal(t, []int{0, 1}, HornTargets([]rune("uo"), 0))
	assert.Equal(t, []int{0, 1}, HornTargets([]rune("uo"), 1))
}

func TestHornTargetsStandalone(t *testing.T) {
	assert.Equal(t, []int{0}, HornTargets([]rune("ua"), 0))
	assert.Equal(t, []int{0}, HornTargets([]rune("oi"), 0))
}

func TestHornTargetsNonUO(t *testing.T) {
	assert.Equal(t, []int{1}, HornTargets([]rune("ai"), 1))
}
