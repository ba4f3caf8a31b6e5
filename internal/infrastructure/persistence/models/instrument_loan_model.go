package models

import (
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
)

// InstrumentLoanModel is the GORM database model for the instrument issue/return log
type InstrumentLoanModel struct {
	ID              string     `gorm:"primaryKey;type:varchar(36)"`
	EquipmentID     string     `gorm:"not null;index;type:varchar(36)"`
	JFTNo           string     `gorm:"not null;index;type:varchar(64)"`
	Borrower        string     `gorm:"not null;type:varchar(100)"`
	Department      string     `gorm:"index;type:varchar(100)"`
	Purpose         string     `gorm:"type:varchar(255)"`
	IssuedAt        time.Time  `gorm:"not null;index"`
	IssuedImagePath *string    `gorm:"type:varchar(512)"`
	ReturnedAt      *time.Time `gorm:"index"`
	ReturnImagePath *string    `gorm:"type:varchar(512)"`
	ReturnCondition string     `gorm:"type:varchar(255)"`
	Status          string     `gorm:"not null;index;type:varchar(16)"`
	Deleted         bool       `gorm:"not null;default:false;index"`
	DateTimeCreated time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (InstrumentLoanModel) TableName() string {
	return "instrument_loans"
}

// ToDomain converts GORM model to domain entity
func (m *InstrumentLoanModel) ToDomain() *instruments.InstrumentLoan {
	return &instruments.InstrumentLoan{
		ID:              m.ID,
		EquipmentID:     m.EquipmentID,
		JFTNo:           m.JFTNo,
		Borrower:        m.Borrower,
		Department:      m.Department,
		Purpose:         m.Purpose,
		IssuedAt:        m.IssuedAt,
		IssuedImagePath: m.IssuedImagePath,
		ReturnedAt:      m.ReturnedAt,
		ReturnImagePath: m.ReturnImagePath,
		ReturnCondition: m.ReturnCondition,
		Status:          m.Status,
		Deleted:         m.Deleted,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *InstrumentLoanModel) FromDomain(l *instruments.InstrumentLoan) {
	m.ID = l.ID
	m.EquipmentID = l.EquipmentID
	m.JFTNo = l.JFTNo
	m.Borrower = l.Borrower
	m.Department = l.Department
	m.Purpose = l.Purpose
	m.IssuedAt = l.IssuedAt.UTC()
	m.IssuedImagePath = l.IssuedImagePath
	m.ReturnedAt = toUTCPtr(l.ReturnedAt)
	m.ReturnImagePath = l.ReturnImagePath
	m.ReturnCondition = l.ReturnCondition
	m.Status = l.Status
	m.Deleted = l.Deleted
	m.DateTimeCreated = l.DateTimeCreated.UTC()
}
