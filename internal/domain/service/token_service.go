package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating access tokens.
// Token issuance belongs to the identity provider; this service only verifies.
type TokenService interface {
	// ValidateToken checks the validity of a token string and extracts its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
