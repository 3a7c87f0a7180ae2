package entity

// KeywordRow is one raw keyword-performance report row.
type KeywordRow struct {
	KeywordID   int64
	AdGroupID   int64
	KeywordText string
}

// SearchTermRow is one raw search-term report row. The metric fields keep
// their report string representation; parsing and validation happen at
// aggregation time so a malformed row can be rejected instead of carrying
// a sentinel value through the pipeline.
type SearchTermRow struct {
	Query                string
	AdGroupID            int64
	AdGroupName          string
	CampaignID           int64
	CampaignName         string
	KeywordID            int64
	KeywordText          string
	MatchTypeWithVariant string
	Impressions          string
	Clicks               string
	Conversions          string
}
