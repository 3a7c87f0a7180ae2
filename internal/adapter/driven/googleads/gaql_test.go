package googleads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
)

func TestDateClause(t *testing.T) {
	named, err := entity.ParseDateRange("LAST_7_DAYS")
	require.NoError(t, err)
	assert.Equal(t, "segments.date DURING LAST_7_DAYS", dateClause(named))

	explicit, err := entity.ParseDateRange("20260801,20260831")
	require.NoError(t, err)
	assert.Equal(t, "segments.date BETWEEN '2026-08-01' AND '2026-08-31'", dateClause(explicit))
}

func TestKeywordPerformanceQuery(t *testing.T) {
	dr, err := entity.ParseDateRange("LAST_30_DAYS")
	require.NoError(t, err)

	query := keywordPerformanceQuery(dr)
	assert.Contains(t, query, "FROM keyword_view")
	assert.Contains(t, query, "metrics.impressions > 0")
	assert.Contains(t, query, "ad_group_criterion.keyword.match_type = 'EXACT'")
	assert.Contains(t, query, "segments.date DURING LAST_30_DAYS")
}

func TestSearchTermPerformanceQuery_NoFilter(t *testing.T) {
	dr, err := entity.ParseDateRange("LAST_7_DAYS")
	require.NoError(t, err)

	query := searchTermPerformanceQuery(dr, "")
	assert.Contains(t, query, "FROM search_term_view")
	assert.Contains(t, query, "segments.search_term_match_type")
	assert.NotContains(t, query, "REGEXP_MATCH")
}

func TestSearchTermPerformanceQuery_CampaignFilter(t *testing.T) {
	dr, err := entity.ParseDateRange("LAST_7_DAYS")
	require.NoError(t, err)

	query := searchTermPerformanceQuery(dr, "Brand")
	assert.Contains(t, query, "campaign.name REGEXP_MATCH '(?i).*Brand.*'")
}

func TestEscapeRegexpLiteral(t *testing.T) {
	assert.Equal(t, "shoes", escapeRegexpLiteral("shoes"))
	assert.Equal(t, `shoes\\+sale`, escapeRegexpLiteral("shoes+sale"))
	assert.Equal(t, `o\'brien`, escapeRegexpLiteral("o'brien"))
}

func TestAdGroupLookupQuery(t *testing.T) {
	query := adGroupLookupQuery([]int64{222, 333})
	assert.Equal(t, "SELECT ad_group.id, ad_group.name FROM ad_group WHERE ad_group.id IN (222, 333)", query)
}

func TestMatchTypeDisplay(t *testing.T) {
	cases := map[string]string{
		"EXACT":       "Exact",
		"NEAR_EXACT":  "Exact (close variant)",
		"PHRASE":      "Phrase",
		"NEAR_PHRASE": "Phrase (close variant)",
		"BROAD":       "Broad",
		"UNSPECIFIED": "UNSPECIFIED",
	}
	for enumValue, want := range cases {
		assert.Equal(t, want, matchTypeDisplay(enumValue))
	}
}
