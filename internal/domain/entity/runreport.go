package entity

// NegativeKeywordResult is one negative-keyword decision from a run, kept
// for the exportable audit report.
type NegativeKeywordResult struct {
	CampaignName    string `json:"campaign_name"`
	AdGroupName     string `json:"ad_group_name"`
	AdGroupID       int64  `json:"ad_group_id"`
	Query           string `json:"query"`
	NegativeKeyword string `json:"negative_keyword"`
	Conversions     int    `json:"conversions"`
	Applied         bool   `json:"applied"`
	Error           string `json:"error,omitempty"`
}

// RunReport collects everything one run produced: the ordered log lines
// that go to the console and the email body, and the per-query results
// for file export.
type RunReport struct {
	DateRange string                  `json:"date_range"`
	EmailOnly bool                    `json:"email_only"`
	Account   AccountInfo             `json:"-"`
	Log       []string                `json:"-"`
	Results   []NegativeKeywordResult `json:"results"`
}
