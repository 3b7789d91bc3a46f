// Package auth issues and verifies the bearer tokens that carry a caller's identity.
package auth

import (
	"alcyxob/weekly-plans/internal/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const issuer = "weekly-plans"

const defaultTokenLifetime = time.Hour

var (
	ErrTokenExpired    = errors.New("token has expired")
	ErrInvalidToken    = errors.New("invalid token")
	ErrMissingClaims   = errors.New("token is missing identity claims")
	ErrEmptySecret     = errors.New("jwt secret cannot be empty")
	ErrTokenGeneration = errors.New("failed to generate authentication token")
)

// claims is the JWT payload.
type claims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 tokens with a shared secret.
type Tokens struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewTokens creates a Tokens. A non-positive lifetime falls back to one hour.
func NewTokens(secret string, lifetime time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}
	return &Tokens{secret: []byte(secret), lifetime: lifetime, now: time.Now}, nil
}

// Issue signs a token for the identity.
func (t *Tokens) Issue(id domain.Identity) (string, error) {
	if id.UserID == "" || !id.Role.Valid() {
		return "", ErrMissingClaims
	}
	now := t.now()
	c := &claims{
		UserID: id.UserID,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}
	return signed, nil
}

// Parse verifies a token and returns the identity it carries.
func (t *Tokens) Parse(token string) (domain.Identity, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return domain.Identity{}, ErrInvalidToken
	}
	if c.UserID == "" || !c.Role.Valid() {
		return domain.Identity{}, ErrMissingClaims
	}
	return domain.Identity{UserID: c.UserID, Role: c.Role}, nil
}
