//go:build unit
// +build unit

package calibration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDue(t *testing.T) {
	tests := []struct {
		name     string
		base     time.Time
		freq     Frequency
		expected time.Time
	}{
		{"four weeks", date(2024, 1, 15), Frequency{4, UnitWeek}, date(2024, 2, 12)},
		{"twelve weeks across year", date(2024, 11, 1), Frequency{12, UnitWeek}, date(2025, 1, 24)},
		{"three months", date(2024, 1, 15), Frequency{3, UnitMonth}, date(2024, 4, 15)},
		{"month overflow follows AddDate", date(2024, 1, 31), Frequency{1, UnitMonth}, date(2024, 3, 2)},
		{"one year", date(2024, 6, 30), Frequency{1, UnitYear}, date(2025, 6, 30)},
		{"leap day plus a year", date(2024, 2, 29), Frequency{1, UnitYear}, date(2025, 3, 1)},
		{"zero amount keeps date", date(2024, 5, 5), Frequency{0, UnitMonth}, date(2024, 5, 5)},
		{"time of day is dropped", time.Date(2024, 1, 15, 17, 45, 0, 0, time.UTC), Frequency{1, UnitWeek}, date(2024, 1, 22)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(NextDue(tt.base, tt.freq)), "got %s", NextDue(tt.base, tt.freq))
		})
	}
}

func TestDueFromString(t *testing.T) {
	due, err := DueFromString(date(2024, 1, 15), "4 Week")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.True(t, date(2024, 2, 12).Equal(*due))

	due, err = DueFromString(date(2024, 1, 15), "4 Decades")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.Nil(t, due)

	assert.NotPanics(t, func() {
		due, err = DueFromString(date(2024, 1, 15), "")
	})
	assert.ErrorIs(t, err, ErrMissingFrequency)
	assert.Nil(t, due)
}
