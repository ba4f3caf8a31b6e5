package calibration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned for malformed report periods
var ErrInvalidPeriod = errors.New("invalid report period")

// Period selects records of one year whose month lies in [StartMonth, EndMonth]
type Period struct {
	Year       int
	StartMonth time.Month
	EndMonth   time.Month
}

// ParsePeriod builds a Period from a year and a month selector.
// month is either a single month ("07"), a range ("03-05") or empty for the whole year.
func ParsePeriod(year int, month string) (Period, error) {
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}

	month = strings.TrimSpace(month)
	if month == "" {
		return Period{Year: year, StartMonth: time.January, EndMonth: time.December}, nil
	}

	startToken, endToken, isRange := strings.Cut(month, "-")
	start, err := parseMonth(startToken)
	if err != nil {
		return Period{}, err
	}

	end := start
	if isRange {
		end, err = parseMonth(endToken)
		if err != nil {
			return Period{}, err
		}
	}

	if start > end {
		return Period{}, fmt.Errorf("%w: start month %02d after end month %02d", ErrInvalidPeriod, start, end)
	}

	return Period{Year: year, StartMonth: start, EndMonth: end}, nil
}

func parseMonth(token string) (time.Month, error) {
	token = strings.TrimSpace(token)
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("%w: month %q", ErrInvalidPeriod, token)
	}
	return time.Month(n), nil
}

// Contains reports whether t falls in the period using t's own calendar date
func (p Period) Contains(t time.Time) bool {
	if t.Year() != p.Year {
		return false
	}
	return t.Month() >= p.StartMonth && t.Month() <= p.EndMonth
}

// Bounds returns the half-open interval [from, to) covered by the period in loc
func (p Period) Bounds(loc *time.Location) (time.Time, time.Time) {
	from := time.Date(p.Year, p.StartMonth, 1, 0, 0, 0, 0, loc)
	to := time.Date(p.Year, p.EndMonth+1, 1, 0, 0, 0, 0, loc)
	return from, to
}

// String renders the period as "2024-03..05" or "2024-07"
func (p Period) String() string {
	if p.StartMonth == p.EndMonth {
		return fmt.Sprintf("%04d-%02d", p.Year, int(p.StartMonth))
	}
	return fmt.Sprintf("%04d-%02d..%02d", p.Year, int(p.StartMonth), int(p.EndMonth))
}

// MatchExact is a case-insensitive equality filter; an empty filter matches everything
func MatchExact(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(filter))
}

// MatchContains is a case-insensitive substring filter; an empty filter matches everything
func MatchContains(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(filter)))
}
