package persistence

import (
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories bundles the GORM repositories sharing one connection
type Repositories struct {
	Equipment equipment.EquipmentRepository
	Cardek    cardek.CardekRepository
	Loans     instruments.InstrumentLoanRepository
	NCRs      ncr.NCRRepository
	Users     users.UserRepository
}

// NewRepositories creates every repository on db
func NewRepositories(db *gorm.DB, logger logger.Logger) (*Repositories, error) {
	equipmentRepo, err := NewGormEquipmentRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment repository: %w", err)
	}

	cardekRepo, err := NewGormCardekRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cardek repository: %w", err)
	}

	loanRepo, err := NewGormInstrumentLoanRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create instrument loan repository: %w", err)
	}

	ncrRepo, err := NewGormNCRRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NCR repository: %w", err)
	}

	userRepo, err := NewGormUserRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	return &Repositories{
		Equipment: equipmentRepo,
		Cardek:    cardekRepo,
		Loans:     loanRepo,
		NCRs:      ncrRepo,
		Users:     userRepo,
	}, nil
}
