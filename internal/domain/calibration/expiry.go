package calibration

import "time"

// NearExpiryWindowDays is the warning threshold before a calibration expires
const NearExpiryWindowDays = 7

// Status is the expiry bucket of a calibration due date
type Status string

// Expiry buckets
const (
	StatusExpired    Status = "expired"
	StatusNearExpiry Status = "near_expiry"
	StatusActive     Status = "active"
	StatusUnknown    Status = "unknown"
)

// Valid reports whether s is one of the known buckets
func (s Status) Valid() bool {
	switch s {
	case StatusExpired, StatusNearExpiry, StatusActive, StatusUnknown:
		return true
	}
	return false
}

// BlocksIssue reports whether an instrument in this bucket may not be loaned out
func (s Status) BlocksIssue() bool {
	return s == StatusExpired || s == StatusNearExpiry
}

// Label is the operator facing text used on reports and alerts
func (s Status) Label() string {
	switch s {
	case StatusExpired:
		return "Expired"
	case StatusNearExpiry:
		return "Akan Expired"
	case StatusActive:
		return "Active"
	default:
		return "-"
	}
}

// DaysRemaining counts whole calendar days from today to nextDue.
// Both instants are reduced to their civil date first, so time of day and
// DST transitions do not shift the result.
func DaysRemaining(nextDue, today time.Time) int {
	due := civil(nextDue)
	now := civil(today)
	return int(due.Sub(now).Hours() / 24)
}

// Classify buckets nextDue relative to today
func Classify(nextDue, today time.Time) Status {
	days := DaysRemaining(nextDue, today)

	switch {
	case days < 0:
		return StatusExpired
	case days <= NearExpiryWindowDays:
		return StatusNearExpiry
	default:
		return StatusActive
	}
}

// ClassifyPtr is Classify for optional due dates; nil yields StatusUnknown
func ClassifyPtr(nextDue *time.Time, today time.Time) Status {
	if nextDue == nil || nextDue.IsZero() {
		return StatusUnknown
	}
	return Classify(*nextDue, today)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
