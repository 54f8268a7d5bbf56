package middleware

import (
	"strings"

	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUsername is the echo context key carrying the authenticated username.
const ContextKeyUsername = "username"

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the signed token on protected routes. A missing
// header or a header without a token segment is rejected before any
// signature check happens.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing authorization header")
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid authorization header")
		}

		claims, err := m.tokenSvc.ValidateToken(fields[1])
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		// Expose the authenticated identity to handlers.
		c.Set(ContextKeyUsername, claims.Username)

		return next(c)
	}
}
