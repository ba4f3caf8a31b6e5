package app

import (
	"context"
	"sort"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/samber/lo"
)

// monitoringService implements the MonitoringService interface
type monitoringService struct {
	equipmentRepository equipment.EquipmentRepository
	notifier            monitoring.Notifier
	logger              logger.Logger
	now                 func() time.Time
}

// NewMonitoringService creates a new instance of MonitoringService
func NewMonitoringService(equipmentRepository equipment.EquipmentRepository, notifier monitoring.Notifier, logger logger.Logger) (monitoring.MonitoringService, error) {
	return &monitoringService{
		equipmentRepository: equipmentRepository,
		notifier:            notifier,
		logger:              logger,
		now:                 calibration.Now,
	}, nil
}

func (s *monitoringService) Overview(ctx context.Context, today time.Time) (*monitoring.CalibrationOverview, error) {
	list, err := s.equipmentRepository.List(ctx, equipment.NewEquipmentQuery())
	if err != nil {
		return nil, err
	}

	counts := lo.CountValuesBy(list, func(e *equipment.Equipment) calibration.Status {
		return e.Status(today)
	})
	for _, st := range []calibration.Status{calibration.StatusExpired, calibration.StatusNearExpiry, calibration.StatusActive, calibration.StatusUnknown} {
		if _, ok := counts[st]; !ok {
			counts[st] = 0
		}
	}

	alerts := s.alerts(list, today)
	return &monitoring.CalibrationOverview{
		Total:  len(list),
		Counts: counts,
		Expired: lo.Filter(alerts, func(a *monitoring.CalibrationAlert, _ int) bool {
			return a.Status == calibration.StatusExpired
		}),
		NearExpiry: lo.Filter(alerts, func(a *monitoring.CalibrationAlert, _ int) bool {
			return a.Status == calibration.StatusNearExpiry
		}),
	}, nil
}

// Sweep keeps going after a failed notification and reports the failure count
func (s *monitoringService) Sweep(ctx context.Context, today time.Time) (*monitoring.SweepResult, error) {
	list, err := s.equipmentRepository.List(ctx, equipment.NewEquipmentQuery())
	if err != nil {
		return nil, err
	}

	result := &monitoring.SweepResult{Checked: len(list)}
	for _, alert := range s.alerts(list, today) {
		if err := s.notifier.Notify(ctx, alert); err != nil {
			result.Failed++
			s.logger.Error("Failed to publish calibration alert", "jftNo", alert.JFTNo, "error", err)
			continue
		}
		result.Published++
	}

	s.logger.Info("Expiry sweep finished", "checked", result.Checked, "published", result.Published, "failed", result.Failed)
	return result, nil
}

// alerts returns the expired and near expiry items, most overdue first
func (s *monitoringService) alerts(list []*equipment.Equipment, today time.Time) []*monitoring.CalibrationAlert {
	generatedAt := s.now().UTC()

	alerts := lo.FilterMap(list, func(e *equipment.Equipment, _ int) (*monitoring.CalibrationAlert, bool) {
		status := e.Status(today)
		if !status.BlocksIssue() {
			return nil, false
		}
		return &monitoring.CalibrationAlert{
			EquipmentID:     e.ID,
			JFTNo:           e.JFTNo,
			Description:     e.Description,
			Department:      e.Department,
			Location:        e.Location,
			NextCalibration: *e.NextCalibration,
			DaysRemaining:   *e.DaysRemaining(today),
			Status:          status,
			GeneratedAt:     generatedAt,
		}, true
	})

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].DaysRemaining != alerts[j].DaysRemaining {
			return alerts[i].DaysRemaining < alerts[j].DaysRemaining
		}
		return alerts[i].JFTNo < alerts[j].JFTNo
	})
	return alerts
}
