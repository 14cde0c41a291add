package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMalformed indicates the token could not be parsed at all.
	ErrMalformed = errors.New("token malformed")
	// ErrExpired indicates the token's validity window has passed.
	ErrExpired = errors.New("token expired")
	// ErrSignature indicates the signature does not verify against the
	// current secret.
	ErrSignature = errors.New("token signature invalid")
)

// Subject identifies the account a token was minted for.
type Subject struct {
	AccountID string
	Email     string
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Manager mints and verifies signed bearer tokens using symmetric HMAC.
// The secret is process-wide configuration; rotating it invalidates every
// outstanding token.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager signing with secret and issuing tokens valid
// for ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Mint issues a signed token bound to the account for the configured
// validity window.
func (m *Manager) Mint(accountID, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: email,
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded subject.
func (m *Manager) Verify(raw string) (Subject, error) {
	var c claims
	t, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Subject{}, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Subject{}, ErrSignature
	case err != nil:
		return Subject{}, ErrMalformed
	}
	if !t.Valid {
		return Subject{}, ErrMalformed
	}
	return Subject{AccountID: c.Subject, Email: c.Email}, nil
}
