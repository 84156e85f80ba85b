package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/surfsup-app/surfsup/internal/pkg/jwt"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := (*claims)["user_id"].(string)
			if !ok || userID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set("user_id", userID)
			if role, ok := (*claims)["role"]; ok {
				c.Set("user_role", role)
			}

			return next(c)
		}
	}
}

// RequireRole restricts a route group to users carrying the given role.
// Must run after JWTAuthMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, _ := c.Get("user_role").(string)
			if userRole != role {
				return utils.UnauthorizedResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
