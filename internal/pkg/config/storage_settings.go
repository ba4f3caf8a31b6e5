package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Storage backends for uploaded attachments and images
const (
	LocalStorageBackend = "local"
	AzureStorageBackend = "azure"
)

// StorageSettings configures where uploaded files are written
type StorageSettings struct {
	Backend          string `mapstructure:"backend" validate:"required,oneof=local azure"`
	Root             string `mapstructure:"root" validate:"required_if=Backend local"`
	ConnectionString string `mapstructure:"connection_string" validate:"required_if=Backend azure"`
	ContainerName    string `mapstructure:"container_name" validate:"required_if=Backend azure"`
	MaxUploadSizeMB  int    `mapstructure:"max_upload_size_mb" validate:"min=1,max=100"`
}

// MaxUploadBytes returns the upload limit in bytes
func (s *StorageSettings) MaxUploadBytes() int64 {
	return int64(s.MaxUploadSizeMB) << 20
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	return nil
}
