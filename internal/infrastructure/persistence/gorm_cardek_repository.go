package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence/models"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCardekRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCardekRepository creates a new GORM-based CardekRepository implementation
func NewGormCardekRepository(db *gorm.DB, logger logger.Logger) (cardek.CardekRepository, error) {
	return &gormCardekRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCardekRepository) Create(ctx context.Context, entry *cardek.CardekEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CardekEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cardek entry: %w", err)
	}

	r.logger.Info("Created cardek entry", "id", entry.ID, "jftNo", entry.JFTNo)
	return nil
}

func (r *gormCardekRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]*cardek.CardekEntry, error) {
	var modelList []*models.CardekEntryModel
	err := r.db.WithContext(ctx).
		Where("equipment_id = ? AND deleted = ?", equipmentID, false).
		Order("calibration_date desc").
		Order("date_time_created desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cardek entries: %w", err)
	}

	domainList := make([]*cardek.CardekEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCardekRepository) GetByID(ctx context.Context, entryID string) (*cardek.CardekEntry, error) {
	var model models.CardekEntryModel
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = ?", entryID, false).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cardek entry with ID %s %w", entryID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch cardek entry: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCardekRepository) UpdateByID(ctx context.Context, entry *cardek.CardekEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CardekEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Model(model).Select("*").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update cardek entry: %w", err)
	}

	r.logger.Info("Updated cardek entry", "id", entry.ID)
	return nil
}

func (r *gormCardekRepository) DeleteByID(ctx context.Context, entryID string) error {
	result := r.db.WithContext(ctx).Model(&models.CardekEntryModel{}).
		Where("id = ? AND deleted = ?", entryID, false).
		Update("deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete cardek entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cardek entry with ID %s %w", entryID, apperr.ErrNotFound)
	}

	r.logger.Info("Deleted cardek entry", "id", entryID)
	return nil
}
