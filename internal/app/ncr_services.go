package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/google/uuid"
)

// ncrService implements the NCRService interface
type ncrService struct {
	ncrRepository ncr.NCRRepository
	logger        logger.Logger
	now           func() time.Time
}

// NewNCRService creates a new instance of NCRService
func NewNCRService(ncrRepository ncr.NCRRepository, logger logger.Logger) (ncr.NCRService, error) {
	return &ncrService{
		ncrRepository: ncrRepository,
		logger:        logger,
		now:           time.Now,
	}, nil
}

// Create opens a new NCR
func (s *ncrService) Create(ctx context.Context, n *ncr.NCR) (*ncr.NCR, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.Status = ncr.StatusOpen
	n.ClosedAt = nil
	n.Deleted = false
	n.DateTimeCreated = s.now()
	n.DateTimeUpdated = n.DateTimeCreated

	if err := n.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.ensureUniqueNumber(ctx, n.NCRNo, ""); err != nil {
		return nil, err
	}

	if err := s.ncrRepository.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create ncr: %w", err)
	}
	return n, nil
}

func (s *ncrService) List(ctx context.Context, query *ncr.NCRQuery) ([]*ncr.NCR, error) {
	if err := query.Validate(); err != nil {
		return nil, invalid(err)
	}
	return s.ncrRepository.List(ctx, query)
}

func (s *ncrService) GetByID(ctx context.Context, ncrID string) (*ncr.NCR, error) {
	return s.ncrRepository.GetByID(ctx, ncrID)
}

// Update overwrites the descriptive fields; status changes go through Close
func (s *ncrService) Update(ctx context.Context, n *ncr.NCR) (*ncr.NCR, error) {
	existing, err := s.ncrRepository.GetByID(ctx, n.ID)
	if err != nil {
		return nil, err
	}

	if n.NCRNo != existing.NCRNo {
		if err := s.ensureUniqueNumber(ctx, n.NCRNo, existing.ID); err != nil {
			return nil, err
		}
	}

	n.Status = existing.Status
	n.ClosedAt = existing.ClosedAt
	n.DateTimeCreated = existing.DateTimeCreated
	n.Deleted = false
	n.DateTimeUpdated = s.now()

	if err := n.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.ncrRepository.UpdateByID(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to update ncr: %w", err)
	}
	return n, nil
}

// Close closes an open NCR
func (s *ncrService) Close(ctx context.Context, ncrID string, disposition string) (*ncr.NCR, error) {
	n, err := s.ncrRepository.GetByID(ctx, ncrID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := n.Close(disposition, now); err != nil {
		if errors.Is(err, ncr.ErrAlreadyClosed) {
			return nil, fmt.Errorf("%s: %w", n.NCRNo, err)
		}
		return nil, invalid(err)
	}
	n.DateTimeUpdated = now

	if err := s.ncrRepository.UpdateByID(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to close ncr: %w", err)
	}

	s.logger.Info("Closed ncr", "ncrNo", n.NCRNo, "disposition", n.Disposition)
	return n, nil
}

func (s *ncrService) DeleteByID(ctx context.Context, ncrID string) error {
	return s.ncrRepository.DeleteByID(ctx, ncrID)
}

func (s *ncrService) ensureUniqueNumber(ctx context.Context, ncrNo, ownID string) error {
	found, err := s.ncrRepository.GetByNumber(ctx, ncrNo)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return nil
	case err != nil:
		return err
	case found.ID != ownID:
		return fmt.Errorf("NCR No. %s already exists: %w", ncrNo, apperr.ErrConflict)
	}
	return nil
}
