package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/go-playground/validator/v10"
)

var (
	instance     *validator.Validate
	instanceOnce sync.Once
)

// New returns the shared validator with the custom calibration tags registered.
func New() *validator.Validate {
	instanceOnce.Do(func() {
		v := validator.New()
		// registration only fails for empty tags or nil functions
		_ = v.RegisterValidation("calfrequency", FrequencyValidation)
		_ = v.RegisterValidation("monthrange", MonthRangeValidation)
		instance = v
	})
	return instance
}

// FrequencyValidation accepts strings like "12 Week", "3 Months" or "1 year".
func FrequencyValidation(fl validator.FieldLevel) bool {
	_, err := calibration.ParseFrequency(fl.Field().String())
	return err == nil
}

// MonthRangeValidation accepts a single month ("07") or a month range ("03-05").
func MonthRangeValidation(fl validator.FieldLevel) bool {
	// year is irrelevant for the month syntax
	_, err := calibration.ParsePeriod(2000, fl.Field().String())
	return err == nil
}

// ValidateStruct validates s and flattens validator errors into one readable error.
func ValidateStruct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
