package connector

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureBlobConnector stores files as blobs of one container
type AzureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector connects with a connection string and creates the container when missing
func NewAzureBlobConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (*AzureBlobConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Save uploads data as blob <category>/<uuid><ext>
func (c *AzureBlobConnector) Save(ctx context.Context, category files.Category, ext string, data []byte) (string, error) {
	name := objectName(category, ext)

	if _, err := c.client.UploadBuffer(ctx, c.containerName, name, data, nil); err != nil {
		return "", fmt.Errorf("failed to upload blob %s: %w", name, err)
	}

	c.logger.Info("Uploaded blob", "container", c.containerName, "path", name, "size", len(data))
	return name, nil
}

// Download reads a blob
func (c *AzureBlobConnector) Download(ctx context.Context, filePath string) ([]byte, error) {
	name, err := files.CleanPath(filePath)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.DownloadStream(ctx, c.containerName, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("file %s %w", filePath, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", name, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close blob stream", "path", name, "error", err)
		}
	}()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Delete removes a blob
func (c *AzureBlobConnector) Delete(ctx context.Context, filePath string) error {
	name, err := files.CleanPath(filePath)
	if err != nil {
		return err
	}

	if _, err := c.client.DeleteBlob(ctx, c.containerName, name, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return fmt.Errorf("file %s %w", filePath, apperr.ErrNotFound)
		}
		return fmt.Errorf("failed to delete blob %s: %w", name, err)
	}

	c.logger.Info("Deleted blob", "container", c.containerName, "path", name)
	return nil
}
