package app

import (
	"context"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/google/uuid"
)

// cardekService implements the CardekService interface
type cardekService struct {
	cardekRepository    cardek.CardekRepository
	equipmentRepository equipment.EquipmentRepository
	logger              logger.Logger
	now                 func() time.Time
}

// NewCardekService creates a new instance of CardekService
func NewCardekService(cardekRepository cardek.CardekRepository, equipmentRepository equipment.EquipmentRepository, logger logger.Logger) (cardek.CardekService, error) {
	return &cardekService{
		cardekRepository:    cardekRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
		now:                 time.Now,
	}, nil
}

func (s *cardekService) Create(ctx context.Context, entry *cardek.CardekEntry) (*cardek.CardekEntry, error) {
	e, err := s.equipmentRepository.GetByID(ctx, entry.EquipmentID)
	if err != nil {
		return nil, err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.JFTNo = e.JFTNo
	if entry.Frequency == "" {
		entry.Frequency = e.Frequency
	}
	entry.Deleted = false
	entry.DateTimeCreated = s.now()
	s.schedule(entry)

	if err := entry.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.cardekRepository.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create cardek entry: %w", err)
	}
	return entry, nil
}

func (s *cardekService) ListByEquipment(ctx context.Context, equipmentID string) ([]*cardek.CardekEntry, error) {
	if _, err := s.equipmentRepository.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.cardekRepository.ListByEquipment(ctx, equipmentID)
}

func (s *cardekService) GetByID(ctx context.Context, entryID string) (*cardek.CardekEntry, error) {
	return s.cardekRepository.GetByID(ctx, entryID)
}

// Update overwrites an entry; the owning equipment cannot change
func (s *cardekService) Update(ctx context.Context, entry *cardek.CardekEntry) (*cardek.CardekEntry, error) {
	existing, err := s.cardekRepository.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	entry.EquipmentID = existing.EquipmentID
	entry.JFTNo = existing.JFTNo
	entry.DateTimeCreated = existing.DateTimeCreated
	entry.Deleted = false
	s.schedule(entry)

	if err := entry.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.cardekRepository.UpdateByID(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update cardek entry: %w", err)
	}
	return entry, nil
}

func (s *cardekService) DeleteByID(ctx context.Context, entryID string) error {
	return s.cardekRepository.DeleteByID(ctx, entryID)
}

func (s *cardekService) schedule(entry *cardek.CardekEntry) {
	if err := entry.ScheduleNextCalibration(); err != nil {
		s.logger.Warn("Next calibration left empty", "jftNo", entry.JFTNo, "frequency", entry.Frequency, "error", err)
	}
}
