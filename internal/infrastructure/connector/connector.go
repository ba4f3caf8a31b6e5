package connector

import (
	"context"
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/google/uuid"
)

// NewFileConnector creates the FileConnector selected by settings.Backend
func NewFileConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (files.FileConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Backend {
	case config.LocalStorageBackend:
		return NewLocalFileConnector(settings, logger)
	case config.AzureStorageBackend:
		return NewAzureBlobConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", settings.Backend)
	}
}

// objectName builds "<category>/<uuid><ext>"
func objectName(category files.Category, ext string) string {
	return fmt.Sprintf("%s/%s%s", category, uuid.NewString(), ext)
}
