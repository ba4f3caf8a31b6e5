package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
	MysqlDbType    = "mysql"
)

// DatabaseSettings holds the connection settings for the metadata store
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite mysql"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	// Name is created on first connect for postgres and mysql; sqlite ignores it
	Name        string `mapstructure:"name" validate:"required_unless=Type sqlite"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
