package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence/models"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type gormEquipmentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEquipmentRepository creates a new GORM-based EquipmentRepository implementation
func NewGormEquipmentRepository(db *gorm.DB, logger logger.Logger) (equipment.EquipmentRepository, error) {
	return &gormEquipmentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EquipmentModel{}
	model.FromDomain(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	r.logger.Info("Created equipment", "id", e.ID, "jftNo", e.JFTNo)
	return nil
}

func (r *gormEquipmentRepository) List(ctx context.Context, query *equipment.EquipmentQuery) ([]*equipment.Equipment, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.EquipmentModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EquipmentModel{}).Where("deleted = ?", false)

	if query.JFTNo != "" {
		dbQuery = dbQuery.Where("LOWER(jft_no) LIKE ?", "%"+strings.ToLower(query.JFTNo)+"%")
	}
	if query.Description != "" {
		dbQuery = dbQuery.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(query.Description)+"%")
	}
	if query.Department != "" {
		dbQuery = dbQuery.Where("LOWER(department) = ?", strings.ToLower(query.Department))
	}
	if query.Location != "" {
		dbQuery = dbQuery.Where("LOWER(location) = ?", strings.ToLower(query.Location))
	}
	if query.Status != "" {
		dbQuery = whereStatus(dbQuery, query.Status, query.Today)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	} else {
		dbQuery = dbQuery.Order("jft_no asc")
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}

	domainList := make([]*equipment.Equipment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

// whereStatus selects one expiry bucket by comparing the stored civil due date with today
func whereStatus(db *gorm.DB, status calibration.Status, today time.Time) *gorm.DB {
	if today.IsZero() {
		today = calibration.Now()
	}
	start := models.CivilDate(today)
	horizon := start.AddDate(0, 0, calibration.NearExpiryWindowDays)

	switch status {
	case calibration.StatusExpired:
		return db.Where("next_calibration < ?", datatypes.Date(start))
	case calibration.StatusNearExpiry:
		return db.Where("next_calibration >= ? AND next_calibration <= ?", datatypes.Date(start), datatypes.Date(horizon))
	case calibration.StatusActive:
		return db.Where("next_calibration > ?", datatypes.Date(horizon))
	default:
		return db.Where("next_calibration IS NULL")
	}
}

func (r *gormEquipmentRepository) GetByID(ctx context.Context, equipmentID string) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = ?", equipmentID, false).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("equipment with ID %s %w", equipmentID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEquipmentRepository) GetByJFTNo(ctx context.Context, jftNo string) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	err := r.db.WithContext(ctx).Where("jft_no = ? AND deleted = ?", jftNo, false).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("equipment with JFT No. %s %w", jftNo, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEquipmentRepository) UpdateByID(ctx context.Context, e *equipment.Equipment) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EquipmentModel{}
	model.FromDomain(e)

	// Select("*") writes NULL next calibration dates as well
	if err := r.db.WithContext(ctx).Model(model).Select("*").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}

	r.logger.Info("Updated equipment", "id", e.ID, "jftNo", e.JFTNo)
	return nil
}

func (r *gormEquipmentRepository) DeleteByID(ctx context.Context, equipmentID string) error {
	result := r.db.WithContext(ctx).Model(&models.EquipmentModel{}).
		Where("id = ? AND deleted = ?", equipmentID, false).
		Update("deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("equipment with ID %s %w", equipmentID, apperr.ErrNotFound)
	}

	r.logger.Info("Deleted equipment", "id", equipmentID)
	return nil
}
