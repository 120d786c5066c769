// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"capsule/config"
	"capsule/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It only verifies tokens; issuance is handled by the identity provider.
type jwtService struct {
	accessSecret string // Secret key for verifying access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// jwtClaims bridges between the raw JWT claims and the domain-level Claims.
type jwtClaims struct {
	jwt.RegisteredClaims
}

// ValidateToken checks the validity of a token string and extracts the user identity.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token structure: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a valid user ID: %w", err)
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
