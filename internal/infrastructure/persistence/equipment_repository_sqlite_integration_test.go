//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence/models"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	e := CreateTestEquipment(t, "JFT-0001", date(2024, 1, 15), "4 Week")
	require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))

	var model models.EquipmentModel
	require.NoError(t, ctx.DB.First(&model, "id = ?", e.ID).Error)
	assert.Equal(t, "JFT-0001", model.JFTNo)

	fetched, err := ctx.EquipmentRepo.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 15), fetched.CalibrationDate)
	require.NotNil(t, fetched.NextCalibration)
	assert.Equal(t, date(2024, 2, 12), *fetched.NextCalibration)

	byJFT, err := ctx.EquipmentRepo.GetByJFTNo(context.Background(), "JFT-0001")
	require.NoError(t, err)
	assert.Equal(t, e.ID, byJFT.ID)
}

func TestEquipmentSqliteRepository_NullNextCalibration(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	e := CreateTestEquipment(t, "JFT-0002", date(2024, 1, 15), "4 Fortnight")
	require.Nil(t, e.NextCalibration)
	require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))

	fetched, err := ctx.EquipmentRepo.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.NextCalibration)
}

func TestEquipmentSqliteRepository_UpdateClearsNextCalibration(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	e := CreateTestEquipment(t, "JFT-0003", date(2024, 1, 15), "1 Year")
	require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))

	e.Frequency = "soon"
	_ = e.ScheduleNextCalibration()
	require.NoError(t, ctx.EquipmentRepo.UpdateByID(context.Background(), e))

	fetched, err := ctx.EquipmentRepo.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, "soon", fetched.Frequency)
	assert.Nil(t, fetched.NextCalibration)
}

func TestEquipmentSqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.EquipmentRepo.Create(context.Background(), &equipment.Equipment{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestEquipmentSqliteRepository_SoftDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	e := CreateTestEquipment(t, "JFT-0004", date(2024, 3, 1), "6 Month")
	require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))
	require.NoError(t, ctx.EquipmentRepo.DeleteByID(context.Background(), e.ID))

	_, err := ctx.EquipmentRepo.GetByID(context.Background(), e.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var model models.EquipmentModel
	require.NoError(t, ctx.DB.First(&model, "id = ?", e.ID).Error)
	assert.True(t, model.Deleted)

	assert.ErrorIs(t, ctx.EquipmentRepo.DeleteByID(context.Background(), e.ID), apperr.ErrNotFound)

	list, err := ctx.EquipmentRepo.List(context.Background(), equipment.NewEquipmentQuery())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEquipmentSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	a := CreateTestEquipment(t, "JFT-0010", date(2024, 1, 1), "1 Year")
	b := CreateTestEquipment(t, "JFT-0011", date(2024, 2, 1), "1 Year")
	b.Department = "Production"
	c := CreateTestEquipment(t, "GAUGE-01", date(2024, 3, 1), "1 Year")
	for _, e := range []*equipment.Equipment{a, b, c} {
		require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))
	}

	query := equipment.NewEquipmentQuery()
	query.JFTNo = "jft"
	list, err := ctx.EquipmentRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	query = equipment.NewEquipmentQuery()
	query.Department = "production"
	list, err = ctx.EquipmentRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	query = equipment.NewEquipmentQuery()
	query.SortBy = "calibration_date"
	query.SortOrder = "desc"
	query.Limit = 2
	list, err = ctx.EquipmentRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, c.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
}

func equipmentDueOn(t *testing.T, jftNo string, due *time.Time) *equipment.Equipment {
	t.Helper()
	e := CreateTestEquipment(t, jftNo, date(2024, 1, 1), "1 Year")
	e.NextCalibration = due
	return e
}

func TestEquipmentSqliteRepository_List_StatusBeforeLimit(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	today := date(2024, 6, 10)
	active := date(2025, 6, 1)
	near := date(2024, 6, 12)

	for _, e := range []*equipment.Equipment{
		equipmentDueOn(t, "A-1", &active),
		equipmentDueOn(t, "A-2", &active),
		equipmentDueOn(t, "Z-9", &near),
	} {
		require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))
	}

	query := equipment.NewEquipmentQuery()
	query.Status = calibration.StatusNearExpiry
	query.Today = today
	query.Limit = 2
	list, err := ctx.EquipmentRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Z-9", list[0].JFTNo)

	query.Status = calibration.StatusActive
	query.Limit = 1
	query.Offset = 1
	list, err = ctx.EquipmentRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A-2", list[0].JFTNo)
}

func TestEquipmentSqliteRepository_List_StatusBoundaries(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	// evening in Jakarta, still the 10th there
	today := time.Date(2024, 6, 10, 21, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	dues := map[string]*time.Time{
		"D-YESTERDAY": lo.ToPtr(date(2024, 6, 9)),
		"D-TODAY":     lo.ToPtr(date(2024, 6, 10)),
		"D-PLUS7":     lo.ToPtr(date(2024, 6, 17)),
		"D-PLUS8":     lo.ToPtr(date(2024, 6, 18)),
		"D-NONE":      nil,
	}
	for jftNo, due := range dues {
		require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), equipmentDueOn(t, jftNo, due)))
	}

	tests := []struct {
		status   calibration.Status
		expected []string
	}{
		{calibration.StatusExpired, []string{"D-YESTERDAY"}},
		{calibration.StatusNearExpiry, []string{"D-PLUS7", "D-TODAY"}},
		{calibration.StatusActive, []string{"D-PLUS8"}},
		{calibration.StatusUnknown, []string{"D-NONE"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			query := equipment.NewEquipmentQuery()
			query.Status = tt.status
			query.Today = today
			list, err := ctx.EquipmentRepo.List(context.Background(), query)
			require.NoError(t, err)

			got := make([]string, len(list))
			for i, e := range list {
				got[i] = e.JFTNo
				assert.Equal(t, tt.status, e.Status(today))
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
