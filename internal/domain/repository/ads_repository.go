package repository

import (
	"context"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/entity"
)

// KeywordRowCursor is a forward-only, single-pass cursor over
// keyword-performance report rows. Err must be checked once Next returns
// false.
type KeywordRowCursor interface {
	Next() bool
	Row() entity.KeywordRow
	Err() error
}

// SearchTermRowCursor is a forward-only, single-pass cursor over
// search-term report rows.
type SearchTermRowCursor interface {
	Next() bool
	Row() entity.SearchTermRow
	Err() error
}

// AdsRepository defines the interface for Google Ads API interactions.
type AdsRepository interface {
	// Reporting
	KeywordPerformanceReport(ctx context.Context, dateRange entity.DateRange) (KeywordRowCursor, error)
	SearchTermPerformanceReport(ctx context.Context, dateRange entity.DateRange, campaignNameFilter string) (SearchTermRowCursor, error)

	// Account operations
	GetAccountInfo(ctx context.Context) (entity.AccountInfo, error)
	GetAdGroups(ctx context.Context, ids []int64) ([]entity.AdGroup, error)

	// Mutation. The phrase arrives already bracketed for exact match,
	// e.g. "[buy red shoes]".
	CreateNegativeKeyword(ctx context.Context, adGroupID int64, phrase string) error
}
