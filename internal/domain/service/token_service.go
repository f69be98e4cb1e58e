package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the JWT pair used by the HTTP layer.
type TokenService interface {
	// GenerateTokens creates an access/refresh token pair for a user. Roles
	// are embedded in the access token only, for stateless authorization.
	GenerateTokens(userID uint, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret and returns the
	// parsed token.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
