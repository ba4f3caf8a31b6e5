package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence/models"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type gormNCRRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNCRRepository creates a new GORM-based NCRRepository implementation
func NewGormNCRRepository(db *gorm.DB, logger logger.Logger) (ncr.NCRRepository, error) {
	return &gormNCRRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNCRRepository) Create(ctx context.Context, n *ncr.NCR) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NCRModel{}
	model.FromDomain(n)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ncr: %w", err)
	}

	r.logger.Info("Created ncr", "id", n.ID, "ncrNo", n.NCRNo)
	return nil
}

func (r *gormNCRRepository) List(ctx context.Context, query *ncr.NCRQuery) ([]*ncr.NCR, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.NCRModel
	dbQuery := r.db.WithContext(ctx).Model(&models.NCRModel{}).Where("deleted = ?", false)

	if query.NCRNo != "" {
		dbQuery = dbQuery.Where("LOWER(ncr_no) LIKE ?", "%"+strings.ToLower(query.NCRNo)+"%")
	}
	if query.Source != "" {
		dbQuery = dbQuery.Where("source = ?", query.Source)
	}
	if query.Department != "" {
		dbQuery = dbQuery.Where("LOWER(department) = ?", strings.ToLower(query.Department))
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Year > 0 {
		period, err := calibration.ParsePeriod(query.Year, query.Month)
		if err != nil {
			return nil, fmt.Errorf("invalid query parameters: %w", err)
		}
		from, to := period.Bounds(time.UTC)
		dbQuery = dbQuery.Where("ncr_date >= ? AND ncr_date < ?", datatypes.Date(from), datatypes.Date(to))
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		column := query.SortBy
		if column == "date" {
			column = "ncr_date"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", column, order))
	} else {
		dbQuery = dbQuery.Order("ncr_date desc").Order("ncr_no asc")
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch ncrs: %w", err)
	}

	domainList := make([]*ncr.NCR, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormNCRRepository) GetByID(ctx context.Context, ncrID string) (*ncr.NCR, error) {
	var model models.NCRModel
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = ?", ncrID, false).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ncr with ID %s %w", ncrID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch ncr: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormNCRRepository) GetByNumber(ctx context.Context, ncrNo string) (*ncr.NCR, error) {
	var model models.NCRModel
	err := r.db.WithContext(ctx).Where("ncr_no = ? AND deleted = ?", ncrNo, false).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ncr with number %s %w", ncrNo, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch ncr: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormNCRRepository) UpdateByID(ctx context.Context, n *ncr.NCR) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NCRModel{}
	model.FromDomain(n)

	if err := r.db.WithContext(ctx).Model(model).Select("*").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update ncr: %w", err)
	}

	r.logger.Info("Updated ncr", "id", n.ID, "status", n.Status)
	return nil
}

func (r *gormNCRRepository) DeleteByID(ctx context.Context, ncrID string) error {
	result := r.db.WithContext(ctx).Model(&models.NCRModel{}).
		Where("id = ? AND deleted = ?", ncrID, false).
		Update("deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ncr: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ncr with ID %s %w", ncrID, apperr.ErrNotFound)
	}

	r.logger.Info("Deleted ncr", "id", ncrID)
	return nil
}
