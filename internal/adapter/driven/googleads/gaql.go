package googleads

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
)

// dateClause renders the lookback window as a GAQL segments.date predicate.
func dateClause(dateRange entity.DateRange) string {
	if dateRange.IsNamed() {
		return "segments.date DURING " + dateRange.Named
	}
	return fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'",
		dateRange.Start.Format("2006-01-02"),
		dateRange.End.Format("2006-01-02"))
}

// keywordPerformanceQuery selects every exact-match keyword that had
// impressions in the window.
func keywordPerformanceQuery(dateRange entity.DateRange) string {
	return "SELECT ad_group_criterion.criterion_id, ad_group_criterion.keyword.text, ad_group.id " +
		"FROM keyword_view " +
		"WHERE metrics.impressions > 0 " +
		"AND ad_group_criterion.keyword.match_type = 'EXACT' " +
		"AND " + dateClause(dateRange)
}

// searchTermPerformanceQuery selects the search-term rows for the window,
// optionally restricted to campaigns whose name contains the filter
// substring (case-insensitive).
func searchTermPerformanceQuery(dateRange entity.DateRange, campaignNameFilter string) string {
	query := "SELECT search_term_view.search_term, ad_group.id, ad_group.name, " +
		"campaign.id, campaign.name, " +
		"segments.keyword.ad_group_criterion, segments.keyword.info.text, " +
		"segments.search_term_match_type, " +
		"metrics.impressions, metrics.clicks, metrics.conversions " +
		"FROM search_term_view " +
		"WHERE " + dateClause(dateRange)
	if campaignNameFilter != "" {
		query += fmt.Sprintf(" AND campaign.name REGEXP_MATCH '(?i).*%s.*'",
			escapeRegexpLiteral(campaignNameFilter))
	}
	return query
}

// adGroupLookupQuery selects the id and name of exactly the given ad groups.
func adGroupLookupQuery(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "SELECT ad_group.id, ad_group.name FROM ad_group " +
		"WHERE ad_group.id IN (" + strings.Join(parts, ", ") + ")"
}

// accountInfoQuery selects the account display name and customer id.
func accountInfoQuery() string {
	return "SELECT customer.id, customer.descriptive_name FROM customer"
}

// escapeRegexpLiteral makes a campaign-name substring safe for embedding
// in a GAQL REGEXP_MATCH pattern.
func escapeRegexpLiteral(s string) string {
	escaped := regexp.QuoteMeta(s)
	escaped = strings.ReplaceAll(escaped, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return escaped
}

// matchTypeDisplay maps the search_term_match_type enum to the legacy
// report display string the pipeline filters on.
func matchTypeDisplay(enumValue string) string {
	switch enumValue {
	case "EXACT":
		return "Exact"
	case "NEAR_EXACT":
		return "Exact (close variant)"
	case "PHRASE":
		return "Phrase"
	case "NEAR_PHRASE":
		return "Phrase (close variant)"
	case "BROAD":
		return "Broad"
	default:
		return enumValue
	}
}
