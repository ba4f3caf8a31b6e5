package equipment

import (
	"context"
)

// EquipmentService manages the master equipment registry.
type EquipmentService interface {
	// Create registers equipment and schedules its next calibration.
	// A duplicate JFT No. is rejected.
	Create(ctx context.Context, equipment *Equipment) (*Equipment, error)

	// List retrieves non-deleted equipment considering a query filter when set.
	List(ctx context.Context, query *EquipmentQuery) ([]*Equipment, error)

	// GetByID retrieves equipment by ID.
	GetByID(ctx context.Context, equipmentID string) (*Equipment, error)

	// GetByJFTNo retrieves equipment by its JFT No.
	GetByJFTNo(ctx context.Context, jftNo string) (*Equipment, error)

	// Update overwrites the editable fields and reschedules the next calibration.
	Update(ctx context.Context, equipment *Equipment) (*Equipment, error)

	// Extend records a new calibration, reschedules the next one and appends a Cardek entry.
	Extend(ctx context.Context, equipmentID string, request *ExtensionRequest) (*Equipment, error)

	// DeleteByID soft deletes equipment by ID.
	DeleteByID(ctx context.Context, equipmentID string) error
}

// LabelService renders printable equipment labels.
type LabelService interface {
	// QRCode returns a PNG QR code encoding the equipment's JFT No.
	QRCode(ctx context.Context, equipmentID string, size int) ([]byte, error)
}

// EquipmentRepository defines the interface for Equipment-related persistence
type EquipmentRepository interface {
	// Create adds new Equipment to the database
	Create(ctx context.Context, equipment *Equipment) error
	// List lists non-deleted Equipment with optional filter
	List(ctx context.Context, query *EquipmentQuery) ([]*Equipment, error)
	// GetByID retrieves non-deleted Equipment by ID
	GetByID(ctx context.Context, equipmentID string) (*Equipment, error)
	// GetByJFTNo retrieves non-deleted Equipment by JFT No.
	GetByJFTNo(ctx context.Context, jftNo string) (*Equipment, error)
	// UpdateByID updates Equipment by ID
	UpdateByID(ctx context.Context, equipment *Equipment) error
	// DeleteByID sets the deleted flag of Equipment by ID
	DeleteByID(ctx context.Context, equipmentID string) error
}
