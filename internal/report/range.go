// Package report turns an owner's records within a local date range into
// index-aligned chart series.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/kiroku/internal/constants"
)

var (
	ErrMissingRange = errors.New("start_date and end_date are required")
	ErrInvalidDate  = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Range is a whole-day date range in local time together with the UTC
// instants bounding it.
type Range struct {
	StartDate string
	EndDate   string
	From      time.Time
	To        time.Time
}

// ParseRange interprets startDate as local midnight and endDate as local
// 23:59:59 (the entire last second included) in loc, and converts both bounds
// to UTC.
func ParseRange(startDate, endDate string, loc *time.Location) (Range, error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		return Range{}, ErrMissingRange
	}

	start, err := time.ParseInLocation(constants.DateLayout, startDate, loc)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start_date %q", ErrInvalidDate, startDate)
	}
	end, err := time.ParseInLocation(constants.DateLayout, endDate, loc)
	if err != nil {
		return Range{}, fmt.Errorf("%w: end_date %q", ErrInvalidDate, endDate)
	}

	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)

	return Range{
		StartDate: startDate,
		EndDate:   endDate,
		From:      start.UTC(),
		To:        endOfDay.UTC(),
	}, nil
}
