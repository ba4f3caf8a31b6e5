package calibration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unit is the time unit of a calibration frequency
type Unit int

// Supported frequency units
const (
	UnitWeek Unit = iota + 1
	UnitMonth
	UnitYear
)

var (
	// ErrMissingFrequency is returned when no amount/unit pair is present
	ErrMissingFrequency = errors.New("calibration frequency is missing")
	// ErrUnknownUnit is returned when the unit token is not week, month or year
	ErrUnknownUnit = errors.New("calibration frequency unit is not recognized")
)

// String returns the canonical unit name
func (u Unit) String() string {
	switch u {
	case UnitWeek:
		return "Week"
	case UnitMonth:
		return "Month"
	case UnitYear:
		return "Year"
	default:
		return "Unknown"
	}
}

// Frequency is a parsed calibration interval, e.g. 12 weeks
type Frequency struct {
	Amount int
	Unit   Unit
}

// String renders the frequency the way it is stored, e.g. "12 Week"
func (f Frequency) String() string {
	return fmt.Sprintf("%d %s", f.Amount, f.Unit)
}

// ParseFrequency parses strings such as "12 Week", "3 months" or "1 YEAR".
// A non-numeric amount is read as 0. Units are matched case-insensitively
// in singular or plural form.
func ParseFrequency(s string) (Frequency, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Frequency{}, fmt.Errorf("%w: %q", ErrMissingFrequency, s)
	}

	amount, err := strconv.Atoi(fields[0])
	if err != nil {
		amount = 0
	}

	unit, err := parseUnit(fields[1])
	if err != nil {
		return Frequency{}, err
	}

	return Frequency{Amount: amount, Unit: unit}, nil
}

func parseUnit(token string) (Unit, error) {
	switch strings.ToLower(token) {
	case "week", "weeks":
		return UnitWeek, nil
	case "month", "months":
		return UnitMonth, nil
	case "year", "years":
		return UnitYear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, token)
	}
}
