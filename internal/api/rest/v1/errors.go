package v1

import (
	"errors"
	"net/http"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/files"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/ncr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, files.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, apperr.ErrConflict),
		errors.Is(err, instruments.ErrCalibrationBlocked),
		errors.Is(err, instruments.ErrAlreadyIssued),
		errors.Is(err, instruments.ErrAlreadyReturned),
		errors.Is(err, ncr.ErrAlreadyClosed):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrInvalid),
		errors.Is(err, files.ErrUnsupportedType),
		errors.Is(err, files.ErrInvalidPath),
		errors.Is(err, reports.ErrUnsupportedFormat),
		errors.Is(err, calibration.ErrInvalidPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), ErrorResponse{Message: err.Error()})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
