package cardek

import (
	"context"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// Calibration results recorded on a card entry
const (
	ResultPass    = "pass"
	ResultFail    = "fail"
	ResultLimited = "limited"
)

// CardekEntry is one calibration event on an equipment's calibration card
type CardekEntry struct {
	ID              string    `validate:"required,uuid4"`
	EquipmentID     string    `validate:"required,uuid4"`
	JFTNo           string    `validate:"required,min=1,max=64"`
	CalibrationDate time.Time `validate:"required"`
	NextCalibration *time.Time
	Frequency       string `validate:"max=32"`
	CertificateNo   string `validate:"max=100"`
	CalibratedBy    string `validate:"max=100"`
	Result          string `validate:"omitempty,oneof=pass fail limited"`
	Remarks         string `validate:"max=1000"`
	Deleted         bool
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating CardekEntry struct
func (c *CardekEntry) Validate() error {
	return validators.ValidateStruct(c)
}

// ScheduleNextCalibration applies the same due date rule as the equipment registry
func (c *CardekEntry) ScheduleNextCalibration() error {
	c.CalibrationDate = calibration.Day(c.CalibrationDate)

	due, err := calibration.DueFromString(c.CalibrationDate, c.Frequency)
	c.NextCalibration = due
	return err
}

// CardekService manages calibration card history.
type CardekService interface {
	// Create appends an entry for existing equipment and schedules its next calibration.
	Create(ctx context.Context, entry *CardekEntry) (*CardekEntry, error)
	// ListByEquipment lists entries of one equipment, newest calibration first.
	ListByEquipment(ctx context.Context, equipmentID string) ([]*CardekEntry, error)
	// GetByID retrieves one entry.
	GetByID(ctx context.Context, entryID string) (*CardekEntry, error)
	// Update overwrites an entry and reschedules its next calibration.
	Update(ctx context.Context, entry *CardekEntry) (*CardekEntry, error)
	// DeleteByID soft deletes an entry.
	DeleteByID(ctx context.Context, entryID string) error
}

// CardekRepository defines the interface for CardekEntry persistence
type CardekRepository interface {
	Create(ctx context.Context, entry *CardekEntry) error
	ListByEquipment(ctx context.Context, equipmentID string) ([]*CardekEntry, error)
	GetByID(ctx context.Context, entryID string) (*CardekEntry, error)
	UpdateByID(ctx context.Context, entry *CardekEntry) error
	DeleteByID(ctx context.Context, entryID string) error
}
