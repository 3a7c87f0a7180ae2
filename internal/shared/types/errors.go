package types

import "errors"

var (
	ErrMissingRecipient  = errors.New("no notification email address configured")
	ErrMissingCustomerID = errors.New("no Google Ads customer ID configured")
	ErrInvalidDateRange  = errors.New("invalid date range: expected a named range like LAST_7_DAYS or an explicit YYYYMMDD,YYYYMMDD pair")
)
