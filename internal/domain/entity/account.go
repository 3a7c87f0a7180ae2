package entity

// AccountInfo identifies the Google Ads account the run operated on.
type AccountInfo struct {
	CustomerID      string
	DescriptiveName string
}

// AdGroup is a resolved ad-group handle returned by the targeted lookup.
type AdGroup struct {
	ID   int64
	Name string
}
