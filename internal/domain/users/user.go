package users

import (
	"context"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/validators"
)

// Roles
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// User is an application account
type User struct {
	ID               string  `validate:"required,uuid4"`
	Username         string  `validate:"required,min=3,max=64,alphanum"`
	FullName         string  `validate:"max=255"`
	Email            string  `validate:"omitempty,email,max=255"`
	Role             string  `validate:"required,oneof=admin operator viewer"`
	PasswordHash     string  `validate:"required"`
	ProfileImagePath *string `validate:"omitempty,min=1,max=512"`
	Active           bool
	Deleted          bool
	DateTimeCreated  time.Time `validate:"required"`
	DateTimeUpdated  time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// CreateUserRequest carries the plain password of a new account
type CreateUserRequest struct {
	Username string `validate:"required,min=3,max=64,alphanum"`
	FullName string `validate:"max=255"`
	Email    string `validate:"omitempty,email,max=255"`
	Role     string `validate:"required,oneof=admin operator viewer"`
	Password string `validate:"required,min=8,max=72"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UpdateUserRequest changes account fields. Nil fields are left untouched.
type UpdateUserRequest struct {
	FullName *string `validate:"omitempty,max=255"`
	Email    *string `validate:"omitempty,email,max=255"`
	Role     *string `validate:"omitempty,oneof=admin operator viewer"`
	Password *string `validate:"omitempty,min=8,max=72"`
	Active   *bool
}

// Validate for validating UpdateUserRequest struct
func (r *UpdateUserRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// UserQuery filters accounts
type UserQuery struct {
	Username string `validate:"omitempty,max=64"`
	Role     string `validate:"omitempty,oneof=admin operator viewer"`

	Limit  int `validate:"omitempty,min=0"`
	Offset int `validate:"omitempty,min=0"`
}

// NewUserQuery creates a UserQuery with default values
func NewUserQuery() *UserQuery {
	return &UserQuery{}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// Claims are the identity facts carried by an access token
type Claims struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the claims carry the admin role
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// TokenIssuer signs and verifies access tokens
type TokenIssuer interface {
	Issue(user *User) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

// PasswordHasher hashes and checks account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserService manages accounts and logins.
type UserService interface {
	Create(ctx context.Context, request *CreateUserRequest) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, request *UpdateUserRequest) (*User, error)
	// SetProfileImage stores the path of an uploaded profile picture.
	SetProfileImage(ctx context.Context, userID string, path string) (*User, error)
	DeleteByID(ctx context.Context, userID string) error
	// Authenticate checks credentials of an active account and returns a signed token with its expiry.
	Authenticate(ctx context.Context, username, password string) (string, time.Time, *User, error)
}

// UserRepository defines the interface for User persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
}
