package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/google/uuid"
)

// userService implements the UserService interface
type userService struct {
	userRepository users.UserRepository
	hasher         users.PasswordHasher
	tokenIssuer    users.TokenIssuer
	logger         logger.Logger
	now            func() time.Time
}

// NewUserService creates a new instance of UserService.
// tokenIssuer may be nil when logins are disabled.
func NewUserService(userRepository users.UserRepository, hasher users.PasswordHasher, tokenIssuer users.TokenIssuer, logger logger.Logger) (users.UserService, error) {
	if hasher == nil {
		return nil, errors.New("password hasher is required")
	}
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
		now:            time.Now,
	}, nil
}

func (s *userService) Create(ctx context.Context, request *users.CreateUserRequest) (*users.User, error) {
	if err := request.Validate(); err != nil {
		return nil, invalid(err)
	}

	_, err := s.userRepository.GetByUsername(ctx, request.Username)
	if err == nil {
		return nil, fmt.Errorf("username %s is taken: %w", request.Username, apperr.ErrConflict)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &users.User{
		ID:              uuid.NewString(),
		Username:        request.Username,
		FullName:        request.FullName,
		Email:           request.Email,
		Role:            request.Role,
		PasswordHash:    hash,
		Active:          true,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if err := query.Validate(); err != nil {
		return nil, invalid(err)
	}
	return s.userRepository.List(ctx, query)
}

func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

func (s *userService) Update(ctx context.Context, userID string, request *users.UpdateUserRequest) (*users.User, error) {
	if err := request.Validate(); err != nil {
		return nil, invalid(err)
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.FullName != nil {
		user.FullName = *request.FullName
	}
	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.Role != nil {
		user.Role = *request.Role
	}
	if request.Active != nil {
		user.Active = *request.Active
	}
	if request.Password != nil {
		hash, err := s.hasher.Hash(*request.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.DateTimeUpdated = s.now()

	if err := s.userRepository.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) SetProfileImage(ctx context.Context, userID string, path string) (*users.User, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ProfileImagePath = &path
	user.DateTimeUpdated = s.now()
	if err := s.userRepository.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to set profile image: %w", err)
	}
	return user, nil
}

func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	return s.userRepository.DeleteByID(ctx, userID)
}

// Authenticate never reveals whether the username or the password was wrong
func (s *userService) Authenticate(ctx context.Context, username, password string) (string, time.Time, *users.User, error) {
	if s.tokenIssuer == nil {
		return "", time.Time{}, nil, fmt.Errorf("login is disabled: %w", apperr.ErrUnauthorized)
	}

	invalidCredentials := fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)

	user, err := s.userRepository.GetByUsername(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return "", time.Time{}, nil, invalidCredentials
	}
	if err != nil {
		return "", time.Time{}, nil, err
	}
	if !user.Active {
		return "", time.Time{}, nil, invalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			return "", time.Time{}, nil, invalidCredentials
		}
		return "", time.Time{}, nil, err
	}

	token, expiresAt, err := s.tokenIssuer.Issue(user)
	if err != nil {
		return "", time.Time{}, nil, err
	}

	s.logger.Info("User logged in", "username", user.Username)
	return token, expiresAt, user, nil
}
