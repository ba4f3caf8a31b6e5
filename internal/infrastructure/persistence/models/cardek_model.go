package models

import (
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/cardek"
	"gorm.io/datatypes"
)

// CardekEntryModel is the GORM database model for calibration card entries
type CardekEntryModel struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)"`
	EquipmentID     string          `gorm:"not null;index;type:varchar(36)"`
	JFTNo           string          `gorm:"not null;index;type:varchar(64)"`
	CalibrationDate datatypes.Date  `gorm:"not null"`
	NextCalibration *datatypes.Date `gorm:"default:null"`
	Frequency       string          `gorm:"type:varchar(32)"`
	CertificateNo   string          `gorm:"type:varchar(100)"`
	CalibratedBy    string          `gorm:"type:varchar(100)"`
	Result          string          `gorm:"type:varchar(16)"`
	Remarks         string          `gorm:"type:text"`
	Deleted         bool            `gorm:"not null;default:false;index"`
	DateTimeCreated time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CardekEntryModel) TableName() string {
	return "cardek_entries"
}

// ToDomain converts GORM model to domain entity
func (m *CardekEntryModel) ToDomain() *cardek.CardekEntry {
	return &cardek.CardekEntry{
		ID:              m.ID,
		EquipmentID:     m.EquipmentID,
		JFTNo:           m.JFTNo,
		CalibrationDate: fromDate(m.CalibrationDate),
		NextCalibration: fromDatePtr(m.NextCalibration),
		Frequency:       m.Frequency,
		CertificateNo:   m.CertificateNo,
		CalibratedBy:    m.CalibratedBy,
		Result:          m.Result,
		Remarks:         m.Remarks,
		Deleted:         m.Deleted,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CardekEntryModel) FromDomain(c *cardek.CardekEntry) {
	m.ID = c.ID
	m.EquipmentID = c.EquipmentID
	m.JFTNo = c.JFTNo
	m.CalibrationDate = toDate(c.CalibrationDate)
	m.NextCalibration = toDatePtr(c.NextCalibration)
	m.Frequency = c.Frequency
	m.CertificateNo = c.CertificateNo
	m.CalibratedBy = c.CalibratedBy
	m.Result = c.Result
	m.Remarks = c.Remarks
	m.Deleted = c.Deleted
	m.DateTimeCreated = c.DateTimeCreated.UTC()
}
