package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the user. The token
	// carries the user's ID as its subject and the email as a custom claim.
	GenerateToken(ctx context.Context, userID int64, email string) (string, error)

	// ValidateToken validates the provided access token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of an access token.
type Claims struct {
	// UserID is parsed from the subject claim.
	UserID int64
	Email  string

	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
