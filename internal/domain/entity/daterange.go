package entity

import (
	"fmt"
	"strings"
	"time"
)

// Named lookback ranges accepted by the reporting service.
var namedDateRanges = map[string]struct{}{
	"TODAY":        {},
	"YESTERDAY":    {},
	"LAST_7_DAYS":  {},
	"LAST_14_DAYS": {},
	"LAST_30_DAYS": {},
	"THIS_MONTH":   {},
	"LAST_MONTH":   {},
}

// DateRange is the lookback window of one run: either a named relative
// range or an explicit start/end date pair.
type DateRange struct {
	Raw   string
	Named string
	Start time.Time
	End   time.Time
}

// ParseDateRange validates a range specifier, either a named range like
// "LAST_7_DAYS" or an explicit "YYYYMMDD,YYYYMMDD" pair.
func ParseDateRange(raw string) (DateRange, error) {
	spec := strings.TrimSpace(raw)
	if spec == "" {
		return DateRange{}, fmt.Errorf("empty date range")
	}

	upper := strings.ToUpper(spec)
	if _, ok := namedDateRanges[upper]; ok {
		return DateRange{Raw: spec, Named: upper}, nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("unknown date range %q", raw)
	}

	start, err := time.Parse("20060102", strings.TrimSpace(parts[0]))
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date in range %q: %w", raw, err)
	}
	end, err := time.Parse("20060102", strings.TrimSpace(parts[1]))
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date in range %q: %w", raw, err)
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("date range %q ends before it starts", raw)
	}

	return DateRange{Raw: spec, Start: start, End: end}, nil
}

// IsNamed reports whether the range is a named relative range.
func (d DateRange) IsNamed() bool {
	return d.Named != ""
}

// String returns the specifier as the operator wrote it, for display.
func (d DateRange) String() string {
	return d.Raw
}
