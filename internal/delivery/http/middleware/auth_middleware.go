// Package middleware holds the HTTP server's middleware chain.
package middleware

import (
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated principal.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Error(c, http.StatusUnauthorized, "Failed to parse token claims")
		}

		// Numeric claims decode as float64.
		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			return response.Error(c, http.StatusUnauthorized, "User ID missing from token")
		}

		rolesClaim, _ := claims["roles"].([]any)
		roleStrings := make([]string, 0, len(rolesClaim))
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roleStrings = append(roleStrings, roleStr)
			}
		}

		c.Set(ContextKeyUserID, uint(sub))
		c.Set(ContextKeyRoles, entity.RolesFromStrings(roleStrings))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated user's
// roles. ADMIN passes every role gate. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).(entity.Roles)
			if !ok {
				return response.Error(c, http.StatusForbidden, "Permission denied: role information missing")
			}

			if !roles.Satisfies(requiredRole) {
				return response.Error(c, http.StatusForbidden, "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

// UserID returns the authenticated user's id from the echo context.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(ContextKeyUserID).(uint)

	return id, ok
}

// UserRoles returns the authenticated user's roles from the echo context.
func UserRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(ContextKeyRoles).(entity.Roles)

	return roles
}
