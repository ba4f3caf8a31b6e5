package files

import (
	"context"
	"errors"
	"mime/multipart"
	"path"
	"strings"
)

// Category is the storage folder an upload belongs to
type Category string

// Upload categories and their storage folders
const (
	CategoryEquipment         Category = "equipment"
	CategoryInstrumentsIssued Category = "instruments/issued"
	CategoryInstrumentsReturn Category = "instruments/return"
	CategoryProfiles          Category = "profiles"
)

var (
	// ErrUnsupportedType is returned for files whose extension the category does not accept
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrTooLarge is returned for files above the configured upload limit
	ErrTooLarge = errors.New("file too large")
	// ErrInvalidPath is returned for stored paths outside the upload layout
	ErrInvalidPath = errors.New("invalid file path")
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// AllowedExtensions lists the lower-case file extensions accepted by a category
func (c Category) AllowedExtensions() []string {
	switch c {
	case CategoryEquipment:
		return []string{".pdf"}
	case CategoryInstrumentsIssued, CategoryInstrumentsReturn, CategoryProfiles:
		return imageExtensions
	default:
		return nil
	}
}

// Accepts reports whether fileName has an extension allowed for the category
func (c Category) Accepts(fileName string) bool {
	ext := strings.ToLower(path.Ext(fileName))
	for _, allowed := range c.AllowedExtensions() {
		if ext == allowed {
			return true
		}
	}
	return false
}

// InstrumentCategory maps the :kind route parameter to a category
func InstrumentCategory(kind string) (Category, bool) {
	switch kind {
	case "issued":
		return CategoryInstrumentsIssued, true
	case "return":
		return CategoryInstrumentsReturn, true
	default:
		return "", false
	}
}

// StoredFile describes a saved upload. Path is relative to the storage root, e.g. "equipment/<uuid>.pdf".
type StoredFile struct {
	Path        string
	Name        string
	Size        int64
	ContentType string
}

// CleanPath normalizes a stored path and rejects traversal outside the storage root
func CleanPath(p string) (string, error) {
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/")
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") || p == "" {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

// FileConnector is an interface for interacting with file storage
type FileConnector interface {
	// Save writes data under category with a generated name keeping ext and returns its relative path.
	Save(ctx context.Context, category Category, ext string, data []byte) (string, error)
	// Download retrieves the content stored at a relative path.
	Download(ctx context.Context, filePath string) ([]byte, error)
	// Delete removes the file stored at a relative path.
	Delete(ctx context.Context, filePath string) error
}

// UploadService validates and stores multipart uploads.
type UploadService interface {
	// Upload stores the file of a multipart header under category.
	Upload(ctx context.Context, category Category, header *multipart.FileHeader) (*StoredFile, error)
	// Download returns the content and detected content type of a stored file.
	Download(ctx context.Context, filePath string) ([]byte, string, error)
	// Delete removes a stored file.
	Delete(ctx context.Context, filePath string) error
}
