//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("equipment %w", apperr.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("login: %w", apperr.ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("JFT-1: %w", apperr.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: expired", instruments.ErrCalibrationBlocked), http.StatusConflict},
		{instruments.ErrAlreadyIssued, http.StatusConflict},
		{instruments.ErrAlreadyReturned, http.StatusConflict},
		{fmt.Errorf("NCR-1: %w", ncr.ErrAlreadyClosed), http.StatusConflict},
		{fmt.Errorf("%w: bad", apperr.ErrInvalid), http.StatusBadRequest},
		{files.ErrUnsupportedType, http.StatusBadRequest},
		{files.ErrInvalidPath, http.StatusBadRequest},
		{reports.ErrUnsupportedFormat, http.StatusBadRequest},
		{calibration.ErrInvalidPeriod, http.StatusBadRequest},
		{files.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("database is gone"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
