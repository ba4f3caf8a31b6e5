//go:build unit
// +build unit

package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Frequency
		wantErr  error
	}{
		{"weeks", "12 Week", Frequency{Amount: 12, Unit: UnitWeek}, nil},
		{"plural weeks", "2 weeks", Frequency{Amount: 2, Unit: UnitWeek}, nil},
		{"months", "3 Month", Frequency{Amount: 3, Unit: UnitMonth}, nil},
		{"upper case years", "1 YEAR", Frequency{Amount: 1, Unit: UnitYear}, nil},
		{"plural years with padding", "  2   Years ", Frequency{Amount: 2, Unit: UnitYear}, nil},
		{"non numeric amount reads as zero", "six Month", Frequency{Amount: 0, Unit: UnitMonth}, nil},
		{"unknown unit", "12 Fortnight", Frequency{}, ErrUnknownUnit},
		{"empty", "", Frequency{}, ErrMissingFrequency},
		{"amount only", "12", Frequency{}, ErrMissingFrequency},
		{"dash placeholder", "-", Frequency{}, ErrMissingFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFrequency(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFrequency_String(t *testing.T) {
	assert.Equal(t, "12 Week", Frequency{Amount: 12, Unit: UnitWeek}.String())
	assert.Equal(t, "3 Month", Frequency{Amount: 3, Unit: UnitMonth}.String())
	assert.Equal(t, "1 Year", Frequency{Amount: 1, Unit: UnitYear}.String())
	assert.Equal(t, "1 Unknown", Frequency{Amount: 1}.String())
}
