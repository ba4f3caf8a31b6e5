package equipment

import (
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// EquipmentQuery filters the equipment registry
type EquipmentQuery struct {
	JFTNo       string             `validate:"omitempty,max=64"`
	Description string             `validate:"omitempty,max=255"`
	Department  string             `validate:"omitempty,max=100"`
	Location    string             `validate:"omitempty,max=100"`
	Status      calibration.Status `validate:"omitempty,oneof=expired near_expiry active unknown"`
	// Today anchors the Status buckets; zero means calibration.Now()
	Today time.Time `validate:"-"`

	Limit     int    `validate:"omitempty,min=0"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=jft_no description department location calibration_date next_calibration date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewEquipmentQuery creates an EquipmentQuery with default values
func NewEquipmentQuery() *EquipmentQuery {
	return &EquipmentQuery{
		Limit:     0,
		Offset:    0,
		SortBy:    "",
		SortOrder: "",
	}
}

// Validate for validating EquipmentQuery struct
func (q *EquipmentQuery) Validate() error {
	return validators.ValidateStruct(q)
}
