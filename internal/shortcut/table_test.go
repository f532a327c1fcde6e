package shortcut

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLongestMatchFirst(t *testing.T) {
	tbl := NewTable()
	require.True(t, tbl.Add(New("vn", "Việt Nam")))
	require.True(t, tbl.Add(New("vnese", "Vietnamese")))

	s, ok := tbl.Lookup("vnese", MethodAll)
	require.True(t, ok)
	assert.Equal(t, "Vietnamese", s.Replacement)

	s, ok = tbl.Lookup("vn", MethodAll)
	require.True(t, ok)
	assert.Equal(t, "Việt Nam", s.Replacement)
}

func TestLookupRespectsMethod(t *testing.T) {
	tbl := NewTable()
	require.True(t, tbl.Add(Telex("w", "ư")))

	_, ok := tbl.Lookup("w", MethodVNI)
	assert.False(t, ok)

	_, ok = tbl.Lookup("w", MethodTelex)
	assert.True(t, ok)
}

func TestCapacityEnforced(t *testing.T) {
	tbl := NewTable()
	for i := 0; i < MaxShortcuts; i++ {
		require.True(t, tbl.Add(New(strings.Repeat("x", i+1), "y")))
	}
	assert.True(t, tbl.IsAtCapacity())
	assert.False(t, tbl.Add(New("one-more", "z")))

	// Replacing an existing trigger at capacity still succeeds.
	assert.True(t, tbl.Add(New("x", "replaced")))
}

func TestReplacementTruncatedTo63Codepoints(t *testing.T) {
	long := strings.Repeat("ố", 100)
	s := New("x", long)
	assert.Len(t, []rune(s.Replacement), MaxReplacementLen)
}

func TestMatchCaseFollowsTrigger(t *testing.T) {
	tbl := NewTable()
	s := New("vn", "việt nam")
	s.CaseMode = MatchCase
	require.True(t, tbl.Add(s))

	_, text, ok := tbl.Render("vn", MethodAll)
	require.True(t, ok)
	assert.Equal(t, "việt nam", text)
}

func TestJSONRoundTrip(t *testing.T) {
	tbl := NewTable()
	require.True(t, tbl.Add(New("vn", "Việt Nam")))
	require.True(t, tbl.Add(Telex("w", "ư")))

	data, err := tbl.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, data, "\"version\": 1")

	tbl2 := NewTable()
	n, err := tbl2.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	s, ok := tbl2.Lookup("vn", MethodAll)
	require.True(t, ok)
	assert.Equal(t, "Việt Nam", s.Replacement)
}

func TestFromJSONRejectsMalformed(t *testing.T) {
	tbl := NewTable()
	_, err := tbl.FromJSON("not json")
	assert.Error(t, err)
}

func TestExportImportAll(t *testing.T) {
	tbl := NewTable()
	require.True(t, tbl.Add(New("hn", "Hà Nội")))

	pairs := tbl.ExportAll()
	require.Len(t, pairs, 1)

	tbl2 := NewTable()
	n := tbl2.ImportAll(pairs)
	assert.Equal(t, 1, n)
}
