package models

import (
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"gorm.io/datatypes"
)

// NCRModel is the GORM database model for non-conformance reports
type NCRModel struct {
	ID               string         `gorm:"primaryKey;type:varchar(36)"`
	NCRNo            string         `gorm:"column:ncr_no;not null;index;type:varchar(64)"`
	Date             datatypes.Date `gorm:"column:ncr_date;not null;index"`
	Source           string         `gorm:"not null;index;type:varchar(16)"`
	Department       string         `gorm:"index;type:varchar(100)"`
	PartNo           string         `gorm:"type:varchar(100)"`
	PartName         string         `gorm:"type:varchar(255)"`
	Description      string         `gorm:"not null;type:text"`
	Quantity         int            `gorm:"not null;default:0"`
	Disposition      string         `gorm:"type:varchar(32)"`
	RootCause        string         `gorm:"type:text"`
	CorrectiveAction string         `gorm:"type:text"`
	RaisedBy         string         `gorm:"type:varchar(100)"`
	Status           string         `gorm:"not null;index;type:varchar(16)"`
	ClosedAt         *time.Time     `gorm:"index"`
	Deleted          bool           `gorm:"not null;default:false;index"`
	DateTimeCreated  time.Time      `gorm:"not null"`
	DateTimeUpdated  time.Time
}

// TableName specifies the table name for GORM
func (NCRModel) TableName() string {
	return "ncrs"
}

// ToDomain converts GORM model to domain entity
func (m *NCRModel) ToDomain() *ncr.NCR {
	return &ncr.NCR{
		ID:               m.ID,
		NCRNo:            m.NCRNo,
		Date:             fromDate(m.Date),
		Source:           m.Source,
		Department:       m.Department,
		PartNo:           m.PartNo,
		PartName:         m.PartName,
		Description:      m.Description,
		Quantity:         m.Quantity,
		Disposition:      m.Disposition,
		RootCause:        m.RootCause,
		CorrectiveAction: m.CorrectiveAction,
		RaisedBy:         m.RaisedBy,
		Status:           m.Status,
		ClosedAt:         m.ClosedAt,
		Deleted:          m.Deleted,
		DateTimeCreated:  m.DateTimeCreated,
		DateTimeUpdated:  m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NCRModel) FromDomain(n *ncr.NCR) {
	m.ID = n.ID
	m.NCRNo = n.NCRNo
	m.Date = toDate(n.Date)
	m.Source = n.Source
	m.Department = n.Department
	m.PartNo = n.PartNo
	m.PartName = n.PartName
	m.Description = n.Description
	m.Quantity = n.Quantity
	m.Disposition = n.Disposition
	m.RootCause = n.RootCause
	m.CorrectiveAction = n.CorrectiveAction
	m.RaisedBy = n.RaisedBy
	m.Status = n.Status
	m.ClosedAt = toUTCPtr(n.ClosedAt)
	m.Deleted = n.Deleted
	m.DateTimeCreated = n.DateTimeCreated.UTC()
	m.DateTimeUpdated = n.DateTimeUpdated.UTC()
}
