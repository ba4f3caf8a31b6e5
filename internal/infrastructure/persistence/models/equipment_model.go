package models

import (
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/equipment"
	"gorm.io/datatypes"
)

// EquipmentModel is the GORM database model for the equipment registry
type EquipmentModel struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)"`
	JFTNo           string          `gorm:"not null;index;type:varchar(64)"`
	Description     string          `gorm:"not null;type:varchar(255)"`
	Brand           string          `gorm:"type:varchar(100)"`
	Model           string          `gorm:"type:varchar(100)"`
	SerialNo        string          `gorm:"type:varchar(100)"`
	Range           string          `gorm:"column:measuring_range;type:varchar(100)"`
	Location        string          `gorm:"index;type:varchar(100)"`
	Department      string          `gorm:"index;type:varchar(100)"`
	Frequency       string          `gorm:"type:varchar(32)"`
	CalibrationDate datatypes.Date  `gorm:"not null"`
	NextCalibration *datatypes.Date `gorm:"index"`
	AttachmentPath  *string         `gorm:"type:varchar(512)"`
	Remarks         string          `gorm:"type:text"`
	Deleted         bool            `gorm:"not null;default:false;index"`
	DateTimeCreated time.Time       `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (EquipmentModel) TableName() string {
	return "equipment"
}

// ToDomain converts GORM model to domain entity
func (m *EquipmentModel) ToDomain() *equipment.Equipment {
	return &equipment.Equipment{
		ID:              m.ID,
		JFTNo:           m.JFTNo,
		Description:     m.Description,
		Brand:           m.Brand,
		Model:           m.Model,
		SerialNo:        m.SerialNo,
		Range:           m.Range,
		Location:        m.Location,
		Department:      m.Department,
		Frequency:       m.Frequency,
		CalibrationDate: fromDate(m.CalibrationDate),
		NextCalibration: fromDatePtr(m.NextCalibration),
		AttachmentPath:  m.AttachmentPath,
		Remarks:         m.Remarks,
		Deleted:         m.Deleted,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EquipmentModel) FromDomain(e *equipment.Equipment) {
	m.ID = e.ID
	m.JFTNo = e.JFTNo
	m.Description = e.Description
	m.Brand = e.Brand
	m.Model = e.Model
	m.SerialNo = e.SerialNo
	m.Range = e.Range
	m.Location = e.Location
	m.Department = e.Department
	m.Frequency = e.Frequency
	m.CalibrationDate = toDate(e.CalibrationDate)
	m.NextCalibration = toDatePtr(e.NextCalibration)
	m.AttachmentPath = e.AttachmentPath
	m.Remarks = e.Remarks
	m.Deleted = e.Deleted
	m.DateTimeCreated = e.DateTimeCreated.UTC()
	m.DateTimeUpdated = e.DateTimeUpdated.UTC()
}
