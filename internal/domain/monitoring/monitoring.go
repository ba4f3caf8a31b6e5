package monitoring

import (
	"context"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
)

// CalibrationAlert announces equipment that is expired or about to expire
type CalibrationAlert struct {
	EquipmentID     string             `json:"equipmentId"`
	JFTNo           string             `json:"jftNo"`
	Description     string             `json:"description"`
	Department      string             `json:"department"`
	Location        string             `json:"location"`
	NextCalibration time.Time          `json:"nextCalibration"`
	DaysRemaining   int                `json:"daysRemaining"`
	Status          calibration.Status `json:"status"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}

// CalibrationOverview summarizes the registry for the dashboard
type CalibrationOverview struct {
	Total      int                        `json:"total"`
	Counts     map[calibration.Status]int `json:"counts"`
	Expired    []*CalibrationAlert        `json:"expired"`
	NearExpiry []*CalibrationAlert        `json:"nearExpiry"`
}

// SweepResult reports one run of the expiry sweep
type SweepResult struct {
	Checked   int
	Published int
	Failed    int
}

// Notifier delivers calibration alerts
type Notifier interface {
	Notify(ctx context.Context, alert *CalibrationAlert) error
	Close() error
}

// MonitoringService classifies the registry against today.
type MonitoringService interface {
	// Overview counts equipment per status and lists expired and near expiry items by days remaining.
	Overview(ctx context.Context, today time.Time) (*CalibrationOverview, error)
	// Sweep publishes one alert per expired or near expiry equipment.
	Sweep(ctx context.Context, today time.Time) (*SweepResult, error)
}
