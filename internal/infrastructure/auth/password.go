package auth

import (
	"errors"
	"fmt"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password with a bcrypt hash
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return fmt.Errorf("wrong password: %w", apperr.ErrUnauthorized)
	}
	if err != nil {
		return fmt.Errorf("failed to check password: %w", err)
	}
	return nil
}

// BcryptHasher implements users.PasswordHasher with bcrypt
type BcryptHasher struct{}

// Hash returns the bcrypt hash of password
func (BcryptHasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

// Compare checks password against hash
func (BcryptHasher) Compare(hash, password string) error {
	return CheckPassword(hash, password)
}
