package models

import (
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
)

// UserModel is the GORM database model for accounts
type UserModel struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)"`
	Username         string    `gorm:"not null;index;type:varchar(64)"`
	FullName         string    `gorm:"type:varchar(255)"`
	Email            string    `gorm:"type:varchar(255)"`
	Role             string    `gorm:"not null;type:varchar(16)"`
	PasswordHash     string    `gorm:"not null;type:varchar(255)"`
	ProfileImagePath *string   `gorm:"type:varchar(512)"`
	Active           bool      `gorm:"not null"`
	Deleted          bool      `gorm:"not null;default:false;index"`
	DateTimeCreated  time.Time `gorm:"not null"`
	DateTimeUpdated  time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:               m.ID,
		Username:         m.Username,
		FullName:         m.FullName,
		Email:            m.Email,
		Role:             m.Role,
		PasswordHash:     m.PasswordHash,
		ProfileImagePath: m.ProfileImagePath,
		Active:           m.Active,
		Deleted:          m.Deleted,
		DateTimeCreated:  m.DateTimeCreated,
		DateTimeUpdated:  m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.FullName = u.FullName
	m.Email = u.Email
	m.Role = u.Role
	m.PasswordHash = u.PasswordHash
	m.ProfileImagePath = u.ProfileImagePath
	m.Active = u.Active
	m.Deleted = u.Deleted
	m.DateTimeCreated = u.DateTimeCreated.UTC()
	m.DateTimeUpdated = u.DateTimeUpdated.UTC()
}

// All returns every model for schema migration
func All() []interface{} {
	return []interface{}{
		&EquipmentModel{},
		&CardekEntryModel{},
		&InstrumentLoanModel{},
		&NCRModel{},
		&UserModel{},
	}
}
