package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/musicvalue/vault-backend/internal/adapter"
)

// SessionClaims is the payload of a backend-issued session token. The
// provider token never leaves the server; sessions reference the linked
// identity by user ID only.
type SessionClaims struct {
	Handle string `json:"handle"`
	jwt.RegisteredClaims
}

// SessionIssuer mints and verifies HS256 session tokens.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  adapter.Clock
}

// NewSessionIssuer creates an issuer. The secret must be non-empty.
func NewSessionIssuer(secret string, ttl time.Duration, clock adapter.Clock) (*SessionIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	return &SessionIssuer{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

// Issue returns a signed session token for the given identity.
func (s *SessionIssuer) Issue(userID, handle string) (string, error) {
	now := s.clock.Now()
	claims := SessionClaims{
		Handle: handle,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
func (s *SessionIssuer) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
