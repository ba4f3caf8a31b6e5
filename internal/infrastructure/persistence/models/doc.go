// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities.
// Calendar dates are stored as datatypes.Date at UTC midnight so that range filters
// compare consistently on every supported database.
package models
