package domain

import "time"

// SearchQuery is the closed set of filters a listing query may carry.
// A zero value matches every record. Construction never fails: inputs
// that cannot be interpreted are dropped instead of surfaced as errors.
type SearchQuery struct {
	Text        string
	CompanyCode string
	CompanyName string
	DateFrom    time.Time
	DateTo      time.Time
	MarketType  MarketType
}

// NewSearchQuery builds a SearchQuery from raw request parameters.
// Dates accept YYYY-MM-DD (or RFC3339); DateTo is pushed to the end of
// its day so the boundary date is fully included. Market types outside
// the closed enumeration are silently ignored.
func NewSearchQuery(text, companyCode, companyName, dateFrom, dateTo, marketType string) SearchQuery {
	q := SearchQuery{
		Text:        text,
		CompanyCode: companyCode,
		CompanyName: companyName,
	}

	if t, ok := parseQueryDate(dateFrom); ok {
		q.DateFrom = t
	}
	if t, ok := parseQueryDate(dateTo); ok {
		q.DateTo = endOfDay(t)
	}
	if mt, ok := ParseMarketType(marketType); ok {
		q.MarketType = mt
	}

	return q
}

// IsEmpty reports whether the query matches all records.
func (q SearchQuery) IsEmpty() bool {
	return q.Text == "" &&
		q.CompanyCode == "" &&
		q.CompanyName == "" &&
		q.DateFrom.IsZero() &&
		q.DateTo.IsZero() &&
		q.MarketType == ""
}

func parseQueryDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
