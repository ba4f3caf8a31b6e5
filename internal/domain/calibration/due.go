package calibration

import "time"

// Day truncates t to midnight of its calendar day in t's location
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDue advances base by the given frequency. Month and year steps use
// time.AddDate normalization, so Jan 31 + 1 month lands in early March.
// The result is truncated to day precision.
func NextDue(base time.Time, f Frequency) time.Time {
	start := Day(base)

	switch f.Unit {
	case UnitWeek:
		return start.AddDate(0, 0, 7*f.Amount)
	case UnitMonth:
		return start.AddDate(0, f.Amount, 0)
	case UnitYear:
		return start.AddDate(f.Amount, 0, 0)
	default:
		return start
	}
}

// DueFromString parses frequency and computes the next due date.
// When the frequency cannot be parsed the due date is nil and the parse
// error is returned so callers can decide whether to surface it.
func DueFromString(base time.Time, frequency string) (*time.Time, error) {
	f, err := ParseFrequency(frequency)
	if err != nil {
		return nil, err
	}

	due := NextDue(base, f)
	return &due, nil
}
