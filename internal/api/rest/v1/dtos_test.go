//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request EquipmentRequest
		wantErr bool
	}{
		{"valid", EquipmentRequest{JFTNo: "JFT-1", Description: "Caliper", CalibrationDate: "2024-01-15"}, false},
		{"missing JFT No.", EquipmentRequest{Description: "Caliper", CalibrationDate: "2024-01-15"}, true},
		{"missing calibration date", EquipmentRequest{JFTNo: "JFT-1", Description: "Caliper"}, true},
		{"free text frequency", EquipmentRequest{JFTNo: "JFT-1", Description: "Caliper", Frequency: "as needed", CalibrationDate: "2024-01-15"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("calibrationDate", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("calibrationDate", "2024-01-15T16:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDate("calibrationDate", "15-01-2024")
	assert.ErrorContains(t, err, "calibrationDate")
}

func TestParseTimestamp_EmptyIsZero(t *testing.T) {
	got, err := parseTimestamp("issuedAt", "")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseTimestamp("issuedAt", "yesterday")
	assert.Error(t, err)
}

func TestNewEquipmentResponse_Classification(t *testing.T) {
	due := time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)
	e := &equipment.Equipment{
		ID:              "id-1",
		JFTNo:           "JFT-1",
		Frequency:       "4 Week",
		CalibrationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		NextCalibration: &due,
	}

	tests := []struct {
		today  time.Time
		status calibration.Status
		days   int
	}{
		{time.Date(2024, 2, 13, 8, 0, 0, 0, time.UTC), calibration.StatusExpired, -1},
		{time.Date(2024, 2, 12, 23, 0, 0, 0, time.UTC), calibration.StatusNearExpiry, 0},
		{time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), calibration.StatusNearExpiry, 7},
		{time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC), calibration.StatusActive, 8},
	}

	for _, tt := range tests {
		response := NewEquipmentResponse(e, tt.today)
		assert.Equal(t, tt.status, response.Status, tt.today.String())
		assert.Equal(t, tt.status.Label(), response.StatusLabel)
		require.NotNil(t, response.DaysRemaining)
		assert.Equal(t, tt.days, *response.DaysRemaining)
		assert.Equal(t, "2024-02-12", *response.NextCalibration)
	}
}
