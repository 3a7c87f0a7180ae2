package entity

import "fmt"

// KeywordKey identifies one keyword within one ad group, in the
// "adGroupId::keywordId" form the reports are joined on.
type KeywordKey string

// NewKeywordKey builds the composite key for an ad group / keyword pair.
func NewKeywordKey(adGroupID, keywordID int64) KeywordKey {
	return KeywordKey(fmt.Sprintf("%d::%d", adGroupID, keywordID))
}

// ExactKeywordIndex is the set of exact-match keywords that had impressions
// in the lookback window. Built once per run and read-only afterwards.
type ExactKeywordIndex map[KeywordKey]struct{}

// NewExactKeywordIndex creates an empty index.
func NewExactKeywordIndex() ExactKeywordIndex {
	return make(ExactKeywordIndex)
}

// Add inserts a key. Duplicate inserts are no-ops.
func (idx ExactKeywordIndex) Add(key KeywordKey) {
	idx[key] = struct{}{}
}

// Contains reports whether the key is present.
func (idx ExactKeywordIndex) Contains(key KeywordKey) bool {
	_, ok := idx[key]
	return ok
}

// Len returns the number of distinct keys in the index.
func (idx ExactKeywordIndex) Len() int {
	return len(idx)
}
