package app

import (
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
}
