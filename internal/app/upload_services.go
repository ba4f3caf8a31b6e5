package app

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"
)

// uploadService implements the UploadService interface
type uploadService struct {
	fileConnector files.FileConnector
	maxBytes      int64
	logger        logger.Logger
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(fileConnector files.FileConnector, maxBytes int64, logger logger.Logger) (files.UploadService, error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("upload limit must be positive, got %d", maxBytes)
	}
	return &uploadService{
		fileConnector: fileConnector,
		maxBytes:      maxBytes,
		logger:        logger,
	}, nil
}

// Upload checks extension, size and sniffed content before storing the file
func (s *uploadService) Upload(ctx context.Context, category files.Category, header *multipart.FileHeader) (*files.StoredFile, error) {
	if header == nil {
		return nil, invalid(fmt.Errorf("file is required"))
	}
	if !category.Accepts(header.Filename) {
		return nil, fmt.Errorf("%w: %s for %s", files.ErrUnsupportedType, header.Filename, category)
	}
	if header.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", files.ErrTooLarge, header.Size, s.maxBytes)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", files.ErrTooLarge, s.maxBytes)
	}

	ext := strings.ToLower(path.Ext(header.Filename))
	sniffed := http.DetectContentType(data)
	if !contentMatches(ext, sniffed) {
		return nil, fmt.Errorf("%w: %s content is %s", files.ErrUnsupportedType, header.Filename, sniffed)
	}

	storedPath, err := s.fileConnector.Save(ctx, category, ext, data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stored upload", "path", storedPath, "size", len(data))
	return &files.StoredFile{
		Path:        storedPath,
		Name:        header.Filename,
		Size:        int64(len(data)),
		ContentType: sniffed,
	}, nil
}

func (s *uploadService) Download(ctx context.Context, filePath string) ([]byte, string, error) {
	cleaned, err := files.CleanPath(filePath)
	if err != nil {
		return nil, "", err
	}

	data, err := s.fileConnector.Download(ctx, cleaned)
	if err != nil {
		return nil, "", err
	}

	contentType := mime.TypeByExtension(path.Ext(cleaned))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

func (s *uploadService) Delete(ctx context.Context, filePath string) error {
	cleaned, err := files.CleanPath(filePath)
	if err != nil {
		return err
	}
	return s.fileConnector.Delete(ctx, cleaned)
}

func contentMatches(ext, sniffed string) bool {
	switch ext {
	case ".pdf":
		return sniffed == "application/pdf"
	case ".jpg", ".jpeg":
		return sniffed == "image/jpeg"
	case ".png":
		return sniffed == "image/png"
	case ".gif":
		return sniffed == "image/gif"
	case ".webp":
		return sniffed == "image/webp"
	}
	return false
}
