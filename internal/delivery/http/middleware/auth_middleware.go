package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-talent-intake/internal/delivery/http/response"
	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/audit"
	"go-talent-intake/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid session token from the Authorization header
// or the admin_session cookie, and exposes the subject and role downstream.
func AuthMiddleware(sessions *auth.Manager, auditLogger *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		} else if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
			// 2. Fall back to the session cookie
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		claims, err := sessions.Parse(tokenString)
		if err != nil {
			auditLogger.Log(c.Request.Context(), audit.Event{
				Event:     audit.EventAccessDenied,
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
				Details:   map[string]any{"reason": "invalid_session", "path": c.FullPath()},
			})
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserRole), claims.Role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.Subject)
		ctx = context.WithValue(ctx, domain.KeyUserRole, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// DashboardRoleMiddleware lets only admin and super_admin through.
func DashboardRoleMiddleware(auditLogger *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !domain.IsDashboardRole(role) {
			auditLogger.Log(c.Request.Context(), audit.Event{
				Event:     audit.EventAccessDenied,
				ActorID:   c.GetString(string(domain.KeyUserID)),
				ActorRole: role,
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
				Details:   map[string]any{"reason": "role", "path": c.FullPath()},
			})
			response.Error(c, http.StatusForbidden, "Access denied", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
