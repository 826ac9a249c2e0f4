package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unibecas/sibeca/internal/app/models"
	"github.com/unibecas/sibeca/internal/app/models/dto"
	"github.com/unibecas/sibeca/internal/pkg/auth"
)

// Context keys set by SessionAuth.
const (
	ContextAccountID = "accountID"
	ContextEmail     = "email"
	ContextFullName  = "fullName"
	ContextRole      = "roleType"
)

// AuthMiddleware guards routes behind the session cookie.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// SessionAuth validates the session cookie and loads its claims into the
// request context. A missing, expired or tampered cookie ends the request
// with 401.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(m.cookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No autorizado"))
			return
		}

		claims, err := m.jwtService.ValidateSessionToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No autorizado"))
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextFullName, claims.FullName)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired rejects sessions whose role differs from the required one.
// Must run after SessionAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No autorizado"))
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(requiredRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("No autorizado"))
			return
		}

		c.Next()
	}
}

// CurrentAccountID returns the authenticated account ID set by SessionAuth.
func CurrentAccountID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextAccountID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
