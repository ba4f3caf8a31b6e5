//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Upload_DelegatesToConnector(t *testing.T) {
	connector := new(MockFileConnector)
	connector.On("Save", mock.Anything, files.CategoryProfiles, ".png", testutil.PNGMagic).
		Return("profiles/abc.png", nil)

	service, err := NewUploadService(connector, 1<<20, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	stored, err := service.Upload(context.Background(), files.CategoryProfiles, testutil.CreateFileHeader(t, "me.PNG", testutil.PNGMagic))
	require.NoError(t, err)
	assert.Equal(t, "profiles/abc.png", stored.Path)
	assert.Equal(t, "me.PNG", stored.Name)
	connector.AssertExpectations(t)
}

func TestUploadService_Upload_RejectsBeforeStoring(t *testing.T) {
	connector := new(MockFileConnector)
	service, err := NewUploadService(connector, 16, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = service.Upload(context.Background(), files.CategoryEquipment, testutil.CreateFileHeader(t, "cert.pdf", testutil.PDFMagic))
	assert.ErrorIs(t, err, files.ErrTooLarge)

	_, err = service.Upload(context.Background(), files.CategoryEquipment, testutil.CreateFileHeader(t, "cert.docx", []byte("x")))
	assert.ErrorIs(t, err, files.ErrUnsupportedType)

	connector.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewUploadService_RequiresLimit(t *testing.T) {
	_, err := NewUploadService(new(MockFileConnector), 0, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
