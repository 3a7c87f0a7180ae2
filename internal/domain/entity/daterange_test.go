package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange_NamedRanges(t *testing.T) {
	for _, name := range []string{"TODAY", "YESTERDAY", "LAST_7_DAYS", "LAST_14_DAYS", "LAST_30_DAYS", "THIS_MONTH", "LAST_MONTH"} {
		dr, err := ParseDateRange(name)
		require.NoError(t, err, name)
		assert.True(t, dr.IsNamed())
		assert.Equal(t, name, dr.Named)
		assert.Equal(t, name, dr.String())
	}
}

func TestParseDateRange_NamedRangeIsCaseInsensitive(t *testing.T) {
	dr, err := ParseDateRange("last_7_days")
	require.NoError(t, err)
	assert.Equal(t, "LAST_7_DAYS", dr.Named)
	// String keeps the operator's spelling.
	assert.Equal(t, "last_7_days", dr.String())
}

func TestParseDateRange_ExplicitPair(t *testing.T) {
	dr, err := ParseDateRange("20260801,20260831")
	require.NoError(t, err)
	assert.False(t, dr.IsNamed())
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), dr.Start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), dr.End)
}

func TestParseDateRange_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"LAST_TUESDAY",
		"20260801",
		"20260801,20260831,20260901",
		"2026-08-01,2026-08-31",
		"20260831,20260801",
	} {
		_, err := ParseDateRange(raw)
		assert.Error(t, err, raw)
	}
}

func TestNewKeywordKey(t *testing.T) {
	assert.Equal(t, KeywordKey("222::111"), NewKeywordKey(222, 111))
}

func TestExactKeywordIndex(t *testing.T) {
	idx := NewExactKeywordIndex()
	idx.Add(NewKeywordKey(222, 111))
	idx.Add(NewKeywordKey(222, 111))
	idx.Add(NewKeywordKey(222, 333))

	assert.Equal(t, 2, idx.Len())
	assert.True(t, idx.Contains(KeywordKey("222::111")))
	assert.False(t, idx.Contains(KeywordKey("111::222")))
}
