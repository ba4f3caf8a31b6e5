//go:build unit
// +build unit

package equipment

import (
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEquipment() *Equipment {
	return &Equipment{
		ID:              uuid.NewString(),
		JFTNo:           "JFT-0001",
		Description:     "Vernier caliper 0-150mm",
		Department:      "Quality",
		Frequency:       "12 Week",
		CalibrationDate: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		DateTimeCreated: time.Now(),
	}
}

func TestEquipment_Validate(t *testing.T) {
	e := newTestEquipment()
	assert.NoError(t, e.Validate())

	e.JFTNo = ""
	err := e.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JFTNo")

	e = newTestEquipment()
	e.ID = "not-a-uuid"
	assert.Error(t, e.Validate())
}

func TestEquipment_ScheduleNextCalibration(t *testing.T) {
	e := newTestEquipment()

	require.NoError(t, e.ScheduleNextCalibration())
	require.NotNil(t, e.NextCalibration)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), e.CalibrationDate)
	assert.Equal(t, time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), *e.NextCalibration)
}

func TestEquipment_ScheduleNextCalibration_UnknownUnitClearsDueDate(t *testing.T) {
	e := newTestEquipment()
	due := time.Now()
	e.NextCalibration = &due
	e.Frequency = "12 Fortnight"

	err := e.ScheduleNextCalibration()
	assert.ErrorIs(t, err, calibration.ErrUnknownUnit)
	assert.Nil(t, e.NextCalibration)
	assert.Equal(t, calibration.StatusUnknown, e.Status(time.Now()))
	assert.Nil(t, e.DaysRemaining(time.Now()))
}

func TestEquipment_StatusAndDaysRemaining(t *testing.T) {
	e := newTestEquipment()
	require.NoError(t, e.ScheduleNextCalibration())

	today := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, calibration.StatusNearExpiry, e.Status(today))
	require.NotNil(t, e.DaysRemaining(today))
	assert.Equal(t, 7, *e.DaysRemaining(today))

	assert.Equal(t, calibration.StatusExpired, e.Status(today.AddDate(0, 0, 8)))
	assert.Equal(t, calibration.StatusActive, e.Status(today.AddDate(0, 0, -1)))
}

func TestEquipmentQuery_Validate(t *testing.T) {
	q := NewEquipmentQuery()
	assert.NoError(t, q.Validate())

	q.SortOrder = "sideways"
	assert.Error(t, q.Validate())

	q = NewEquipmentQuery()
	q.Status = "broken"
	assert.Error(t, q.Validate())

	q = NewEquipmentQuery()
	q.Status = calibration.StatusNearExpiry
	q.SortBy = "next_calibration"
	assert.NoError(t, q.Validate())
}

func TestExtensionRequest_Validate(t *testing.T) {
	r := &ExtensionRequest{CalibrationDate: time.Now(), Result: "pass"}
	assert.NoError(t, r.Validate())

	r.Result = "maybe"
	assert.Error(t, r.Validate())

	assert.Error(t, (&ExtensionRequest{}).Validate())
}
