package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/google/uuid"
)

// equipmentService implements the EquipmentService interface
type equipmentService struct {
	equipmentRepository equipment.EquipmentRepository
	cardekRepository    cardek.CardekRepository
	logger              logger.Logger
	now                 func() time.Time
}

// NewEquipmentService creates a new instance of EquipmentService
func NewEquipmentService(equipmentRepository equipment.EquipmentRepository, cardekRepository cardek.CardekRepository, logger logger.Logger) (equipment.EquipmentService, error) {
	return &equipmentService{
		equipmentRepository: equipmentRepository,
		cardekRepository:    cardekRepository,
		logger:              logger,
		now:                 calibration.Now,
	}, nil
}

// Create registers equipment. An unparsable frequency is stored with no next calibration date.
func (s *equipmentService) Create(ctx context.Context, e *equipment.Equipment) (*equipment.Equipment, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Deleted = false
	e.DateTimeCreated = s.now()
	e.DateTimeUpdated = e.DateTimeCreated
	s.schedule(e)

	if err := e.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.ensureUniqueJFTNo(ctx, e.JFTNo, ""); err != nil {
		return nil, err
	}

	if err := s.equipmentRepository.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}
	return e, nil
}

// List retrieves equipment. Status buckets are evaluated against today's date.
func (s *equipmentService) List(ctx context.Context, query *equipment.EquipmentQuery) ([]*equipment.Equipment, error) {
	if err := query.Validate(); err != nil {
		return nil, invalid(err)
	}
	if query.Status != "" && query.Today.IsZero() {
		query.Today = s.now()
	}

	return s.equipmentRepository.List(ctx, query)
}

func (s *equipmentService) GetByID(ctx context.Context, equipmentID string) (*equipment.Equipment, error) {
	return s.equipmentRepository.GetByID(ctx, equipmentID)
}

func (s *equipmentService) GetByJFTNo(ctx context.Context, jftNo string) (*equipment.Equipment, error) {
	return s.equipmentRepository.GetByJFTNo(ctx, jftNo)
}

// Update overwrites the editable fields of an existing record
func (s *equipmentService) Update(ctx context.Context, e *equipment.Equipment) (*equipment.Equipment, error) {
	existing, err := s.equipmentRepository.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}

	if e.JFTNo != existing.JFTNo {
		if err := s.ensureUniqueJFTNo(ctx, e.JFTNo, existing.ID); err != nil {
			return nil, err
		}
	}

	e.DateTimeCreated = existing.DateTimeCreated
	e.Deleted = false
	e.DateTimeUpdated = s.now()
	s.schedule(e)

	if err := e.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.equipmentRepository.UpdateByID(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}
	return e, nil
}

// Extend records a new calibration, reschedules the next one and appends a Cardek entry
func (s *equipmentService) Extend(ctx context.Context, equipmentID string, request *equipment.ExtensionRequest) (*equipment.Equipment, error) {
	if err := request.Validate(); err != nil {
		return nil, invalid(err)
	}

	e, err := s.equipmentRepository.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	e.CalibrationDate = request.CalibrationDate
	if request.Frequency != "" {
		e.Frequency = request.Frequency
	}
	if request.AttachmentPath != nil {
		e.AttachmentPath = request.AttachmentPath
	}
	e.DateTimeUpdated = s.now()
	s.schedule(e)

	if err := s.equipmentRepository.UpdateByID(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to extend equipment: %w", err)
	}

	entry := &cardek.CardekEntry{
		ID:              uuid.NewString(),
		EquipmentID:     e.ID,
		JFTNo:           e.JFTNo,
		CalibrationDate: e.CalibrationDate,
		NextCalibration: e.NextCalibration,
		Frequency:       e.Frequency,
		CertificateNo:   request.CertificateNo,
		CalibratedBy:    request.CalibratedBy,
		Result:          request.Result,
		Remarks:         request.Remarks,
		DateTimeCreated: s.now(),
	}
	if err := s.cardekRepository.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append cardek entry: %w", err)
	}

	s.logger.Info("Extended calibration", "jftNo", e.JFTNo, "calibrationDate", e.CalibrationDate.Format(time.DateOnly))
	return e, nil
}

func (s *equipmentService) DeleteByID(ctx context.Context, equipmentID string) error {
	return s.equipmentRepository.DeleteByID(ctx, equipmentID)
}

func (s *equipmentService) schedule(e *equipment.Equipment) {
	if err := e.ScheduleNextCalibration(); err != nil {
		s.logger.Warn("Next calibration left empty", "jftNo", e.JFTNo, "frequency", e.Frequency, "error", err)
	}
}

func (s *equipmentService) ensureUniqueJFTNo(ctx context.Context, jftNo, ownID string) error {
	found, err := s.equipmentRepository.GetByJFTNo(ctx, jftNo)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return nil
	case err != nil:
		return err
	case found.ID != ownID:
		return fmt.Errorf("JFT No. %s is already registered: %w", jftNo, apperr.ErrConflict)
	}
	return nil
}

// QREncoder renders content as a PNG QR code of the given pixel size
type QREncoder func(content string, size int) ([]byte, error)

type labelService struct {
	equipmentRepository equipment.EquipmentRepository
	encode              QREncoder
}

// NewLabelService creates a LabelService encoding JFT numbers with encode
func NewLabelService(equipmentRepository equipment.EquipmentRepository, encode QREncoder) (equipment.LabelService, error) {
	if encode == nil {
		return nil, errors.New("qr encoder is required")
	}
	return &labelService{
		equipmentRepository: equipmentRepository,
		encode:              encode,
	}, nil
}

func (s *labelService) QRCode(ctx context.Context, equipmentID string, size int) ([]byte, error) {
	e, err := s.equipmentRepository.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	png, err := s.encode(e.JFTNo, size)
	if err != nil {
		return nil, invalid(err)
	}
	return png, nil
}
