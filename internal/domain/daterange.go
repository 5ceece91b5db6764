package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a string is not a valid ISO-8601 calendar date
var ErrInvalidDate = errors.New("domain: invalid date")

// DateRange is a calendar-day interval from check-in (Start) to check-out (End).
// Both endpoints are days at midnight UTC; time-of-day never participates in
// comparisons. A valid range spans at least one night.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD) into a midnight-UTC day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Day(t), nil
}

// ParseDateRange parses check-in and check-out ISO dates into a DateRange.
// Endpoint ordering is not checked here; callers use IsValidOrdering.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: s, End: e}, nil
}

// NewDateRange builds a DateRange from two instants, truncating both to days.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// IsValidOrdering reports whether Start is strictly before End.
// Equal endpoints are invalid: a booking spans at least one night.
func (r DateRange) IsValidOrdering() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two ranges share at least one night.
// Boundary contact (one range ending the day the other starts) does not count
// here; turnover-day blocking is handled by inclusive occupied-day marking.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// ContainsDay reports whether day falls within [Start, End], inclusive of both
// endpoints. The checkout day counts as contained even though it is not a
// charged night.
func (r DateRange) ContainsDay(day time.Time) bool {
	d := Day(day)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Nights returns the number of nights stayed (End - Start in days).
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}

// EachDay calls fn for every calendar day from Start through End inclusive.
func (r DateRange) EachDay(fn func(day time.Time)) {
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// StartISO returns the check-in day as an ISO-8601 date string.
func (r DateRange) StartISO() string {
	return r.Start.Format(DateFormat)
}

// EndISO returns the check-out day as an ISO-8601 date string.
func (r DateRange) EndISO() string {
	return r.End.Format(DateFormat)
}
