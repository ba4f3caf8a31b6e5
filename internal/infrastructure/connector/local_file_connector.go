package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"
)

// LocalFileConnector writes files below a root directory
type LocalFileConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalFileConnector creates the root directory when missing
func NewLocalFileConnector(settings *config.StorageSettings, logger logger.Logger) (*LocalFileConnector, error) {
	if err := os.MkdirAll(settings.Root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", settings.Root, err)
	}

	return &LocalFileConnector{
		root:   settings.Root,
		logger: logger,
	}, nil
}

// Save writes data to <root>/<category>/<uuid><ext>
func (c *LocalFileConnector) Save(ctx context.Context, category files.Category, ext string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := objectName(category, ext)
	fullPath := filepath.Join(c.root, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	c.logger.Info("Stored file", "path", name, "size", len(data))
	return name, nil
}

// Download reads a stored file
func (c *LocalFileConnector) Download(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath, err := c.resolve(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %s %w", filePath, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return data, nil
}

// Delete removes a stored file
func (c *LocalFileConnector) Delete(ctx context.Context, filePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := c.resolve(filePath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file %s %w", filePath, apperr.ErrNotFound)
		}
		return fmt.Errorf("failed to delete %s: %w", filePath, err)
	}

	c.logger.Info("Deleted file", "path", filePath)
	return nil
}

func (c *LocalFileConnector) resolve(filePath string) (string, error) {
	cleaned, err := files.CleanPath(filePath)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.root, filepath.FromSlash(cleaned)), nil
}
