package entity

// SearchQueryRecord is one search-term report row that survived the
// close-variant filter. Immutable once constructed.
type SearchQueryRecord struct {
	Key         KeywordKey
	KeywordText string
	Query       string
	MatchType   string
	Impressions int
	Clicks      int
	Conversions int
}

// AdGroupQueries holds the accepted records of one ad group, in report row
// order. The display names come from the first accepted row.
type AdGroupQueries struct {
	AdGroupID    int64
	AdGroupName  string
	CampaignName string
	Queries      []SearchQueryRecord
}
