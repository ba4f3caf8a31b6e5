//go:build unit
// +build unit

package calibration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    string
		expected Period
		wantErr  bool
	}{
		{"single month", 2024, "07", Period{2024, time.July, time.July}, false},
		{"range", 2024, "03-05", Period{2024, time.March, time.May}, false},
		{"range with spaces", 2024, " 03 - 05 ", Period{2024, time.March, time.May}, false},
		{"whole year", 2024, "", Period{2024, time.January, time.December}, false},
		{"reversed range", 2024, "05-03", Period{}, true},
		{"month thirteen", 2024, "13", Period{}, true},
		{"garbage", 2024, "ab", Period{}, true},
		{"zero year", 0, "01", Period{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePeriod(tt.year, tt.month)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPeriod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPeriod_ContainsBoundaries(t *testing.T) {
	p, err := ParsePeriod(2024, "03-05")
	require.NoError(t, err)

	assert.True(t, p.Contains(date(2024, 3, 1)), "first day of range")
	assert.True(t, p.Contains(date(2024, 5, 31)), "last day of range")
	assert.True(t, p.Contains(time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)), "last instant of range")
	assert.False(t, p.Contains(date(2024, 2, 29)), "day before range")
	assert.False(t, p.Contains(date(2024, 6, 1)), "day after range")
	assert.False(t, p.Contains(date(2023, 4, 1)), "other year")
}

func TestPeriod_Bounds(t *testing.T) {
	p, err := ParsePeriod(2024, "11-12")
	require.NoError(t, err)

	from, to := p.Bounds(time.UTC)
	assert.Equal(t, date(2024, 11, 1), from)
	assert.Equal(t, date(2025, 1, 1), to)
	assert.Equal(t, "2024-11..12", p.String())
}

func TestMatchers(t *testing.T) {
	assert.True(t, MatchExact("Supplier", "supplier"))
	assert.True(t, MatchExact("Supplier", ""))
	assert.False(t, MatchExact("Supplier", "supp"))

	assert.True(t, MatchContains("Quality Assurance", "assur"))
	assert.True(t, MatchContains("Quality Assurance", ""))
	assert.False(t, MatchContains("Quality Assurance", "production"))
}
