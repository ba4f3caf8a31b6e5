package equipment

import (
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// Equipment is a master registry record keyed by its JFT No.
type Equipment struct {
	ID              string    `validate:"required,uuid4"`
	JFTNo           string    `validate:"required,min=1,max=64"`
	Description     string    `validate:"required,min=1,max=255"`
	Brand           string    `validate:"max=100"`
	Model           string    `validate:"max=100"`
	SerialNo        string    `validate:"max=100"`
	Range           string    `validate:"max=100"`
	Location        string    `validate:"max=100"`
	Department      string    `validate:"max=100"`
	Frequency       string    `validate:"max=32"`
	CalibrationDate time.Time `validate:"required"`
	// NextCalibration is nil when Frequency cannot be parsed
	NextCalibration *time.Time
	AttachmentPath  *string `validate:"omitempty,min=1,max=512"`
	Remarks         string  `validate:"max=1000"`
	Deleted         bool
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating Equipment struct
func (e *Equipment) Validate() error {
	return validators.ValidateStruct(e)
}

// ScheduleNextCalibration derives NextCalibration from CalibrationDate and Frequency.
// On a frequency parse failure NextCalibration is cleared and the parse error returned.
func (e *Equipment) ScheduleNextCalibration() error {
	e.CalibrationDate = calibration.Day(e.CalibrationDate)

	due, err := calibration.DueFromString(e.CalibrationDate, e.Frequency)
	e.NextCalibration = due
	return err
}

// Status classifies the calibration due date against today
func (e *Equipment) Status(today time.Time) calibration.Status {
	return calibration.ClassifyPtr(e.NextCalibration, today)
}

// DaysRemaining returns the days until NextCalibration, or nil when it is unknown
func (e *Equipment) DaysRemaining(today time.Time) *int {
	if e.NextCalibration == nil {
		return nil
	}
	days := calibration.DaysRemaining(*e.NextCalibration, today)
	return &days
}

// ExtensionRequest records a new calibration of an existing instrument.
// An empty Frequency keeps the current one.
type ExtensionRequest struct {
	CalibrationDate time.Time `validate:"required"`
	Frequency       string    `validate:"omitempty,max=32"`
	CertificateNo   string    `validate:"max=100"`
	CalibratedBy    string    `validate:"max=100"`
	Result          string    `validate:"omitempty,oneof=pass fail limited"`
	Remarks         string    `validate:"max=1000"`
	AttachmentPath  *string   `validate:"omitempty,min=1,max=512"`
}

// Validate for validating ExtensionRequest struct
func (r *ExtensionRequest) Validate() error {
	return validators.ValidateStruct(r)
}
