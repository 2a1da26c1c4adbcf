package middleware

import (
	"net/http"
	"slices"
	"strings"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	ContextKeyUserID    = "userID"
	ContextKeyUserRole  = "userRole"
	ContextKeyUserEmail = "userEmail"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyUserEmail, claims.Email)

		return next(c)
	}
}

// RequireRole is a middleware factory that restricts a route to the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRoles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyUserRole).(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(requiredRoles, role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: insufficient role"})
			}

			return next(c)
		}
	}
}

// ActorFromContext builds the authenticated actor from the context values
// set by Authenticate.
func ActorFromContext(c echo.Context) usecase.Actor {
	actor := usecase.Actor{}
	if id, ok := c.Get(ContextKeyUserID).(uint); ok {
		actor.ID = id
	}
	if role, ok := c.Get(ContextKeyUserRole).(entity.Role); ok {
		actor.Role = role
	}

	return actor
}
