package notify

import (
	"context"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"
)

type logNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a Notifier that writes each alert as a warning
func NewLogNotifier(logger logger.Logger) monitoring.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(_ context.Context, alert *monitoring.CalibrationAlert) error {
	n.logger.Warn("Calibration alert",
		"jftNo", alert.JFTNo,
		"description", alert.Description,
		"department", alert.Department,
		"status", alert.Status.Label(),
		"nextCalibration", alert.NextCalibration.Format("2006-01-02"),
		"daysRemaining", alert.DaysRemaining,
	)
	return nil
}

func (n *logNotifier) Close() error {
	return nil
}
