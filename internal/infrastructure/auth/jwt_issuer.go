package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/users"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/apperr"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	claimUsername = "username"
	claimRole     = "role"
)

// JWTIssuer issues HS256 signed tokens
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer creates a TokenIssuer from auth settings
func NewJWTIssuer(settings *config.AuthSettings) (*JWTIssuer, error) {
	if len(settings.Secret) < 32 {
		return nil, errors.New("auth secret must be at least 32 characters")
	}
	ttl := settings.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &JWTIssuer{
		secret: []byte(settings.Secret),
		issuer: settings.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for user and returns it with its expiry
func (i *JWTIssuer) Issue(user *users.User) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	builder := jwt.NewBuilder().
		Subject(user.ID).
		IssuedAt(now).
		NotBefore(now).
		Expiration(expiresAt).
		Claim(claimUsername, user.Username).
		Claim(claimRole, user.Role)
	if i.issuer != "" {
		builder = builder.Issuer(i.issuer)
	}

	tok, err := builder.Build()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, i.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return string(signed), expiresAt, nil
}

// Verify checks signature, issuer and lifetime of a token and returns its claims
func (i *JWTIssuer) Verify(token string) (*users.Claims, error) {
	options := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256, i.secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(i.now)),
		jwt.WithAcceptableSkew(30 * time.Second),
	}
	if i.issuer != "" {
		options = append(options, jwt.WithIssuer(i.issuer))
	}

	tok, err := jwt.Parse([]byte(token), options...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v: %w", err, apperr.ErrUnauthorized)
	}

	claims := &users.Claims{UserID: tok.Subject()}
	if v, ok := tok.Get(claimUsername); ok {
		claims.Username, _ = v.(string)
	}
	if v, ok := tok.Get(claimRole); ok {
		claims.Role, _ = v.(string)
	}
	if claims.UserID == "" || claims.Role == "" {
		return nil, fmt.Errorf("token misses subject or role: %w", apperr.ErrUnauthorized)
	}
	return claims, nil
}
