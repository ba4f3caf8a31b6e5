package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/persistence/models"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormInstrumentLoanRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormInstrumentLoanRepository creates a new GORM-based InstrumentLoanRepository implementation
func NewGormInstrumentLoanRepository(db *gorm.DB, logger logger.Logger) (instruments.InstrumentLoanRepository, error) {
	return &gormInstrumentLoanRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormInstrumentLoanRepository) Create(ctx context.Context, loan *instruments.InstrumentLoan) error {
	if err := loan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InstrumentLoanModel{}
	model.FromDomain(loan)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create instrument loan: %w", err)
	}

	r.logger.Info("Issued instrument", "id", loan.ID, "jftNo", loan.JFTNo, "borrower", loan.Borrower)
	return nil
}

func (r *gormInstrumentLoanRepository) List(ctx context.Context, query *instruments.LoanQuery) ([]*instruments.InstrumentLoan, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.InstrumentLoanModel
	dbQuery := r.db.WithContext(ctx).Model(&models.InstrumentLoanModel{}).Where("deleted = ?", false)

	if query.JFTNo != "" {
		dbQuery = dbQuery.Where("LOWER(jft_no) LIKE ?", "%"+strings.ToLower(query.JFTNo)+"%")
	}
	if query.Borrower != "" {
		dbQuery = dbQuery.Where("LOWER(borrower) LIKE ?", "%"+strings.ToLower(query.Borrower)+"%")
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
		from, to := period.Bounds(calibration.Location())
		dbQuery = dbQuery.Where("issued_at >= ? AND issued_at < ?", from.UTC(), to.UTC())
	}

	dbQuery = dbQuery.Order("issued_at desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch instrument loans: %w", err)
	}

	domainList := make([]*instruments.InstrumentLoan, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormInstrumentLoanRepository) GetByID(ctx context.Context, loanID string) (*instruments.InstrumentLoan, error) {
	var model models.InstrumentLoanModel
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = ?", loanID, false).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("instrument loan with ID %s %w", loanID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch instrument loan: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormInstrumentLoanRepository) FindOpenByEquipment(ctx context.Context, equipmentID string) (*instruments.InstrumentLoan, error) {
	var modelList []*models.InstrumentLoanModel
	err := r.db.WithContext(ctx).
		Where("equipment_id = ? AND status = ? AND deleted = ?", equipmentID, instruments.LoanStatusIssued, false).
		Order("issued_at desc").
		Limit(1).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open instrument loan: %w", err)
	}
	if len(modelList) == 0 {
		return nil, nil
	}
	return modelList[0].ToDomain(), nil
}

func (r *gormInstrumentLoanRepository) UpdateByID(ctx context.Context, loan *instruments.InstrumentLoan) error {
	if err := loan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InstrumentLoanModel{}
	model.FromDomain(loan)

	if err := r.db.WithContext(ctx).Model(model).Select("*").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update instrument loan: %w", err)
	}

	r.logger.Info("Updated instrument loan", "id", loan.ID, "status", loan.Status)
	return nil
}

func (r *gormInstrumentLoanRepository) DeleteByID(ctx context.Context, loanID string) error {
	result := r.db.WithContext(ctx).Model(&models.InstrumentLoanModel{}).
		Where("id = ? AND deleted = ?", loanID, false).
		Update("deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete instrument loan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("instrument loan with ID %s %w", loanID, apperr.ErrNotFound)
	}

	r.logger.Info("Deleted instrument loan", "id", loanID)
	return nil
}
