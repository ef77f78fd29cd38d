package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"go-talent-intake/internal/delivery/http/response"
	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/audit"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the name of the header that must contain the CSRF token
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

func generateCSRFToken() (string, error) {
	b := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Any request without a csrf_token cookie gets one. State-changing requests
// must echo the cookie value in the X-CSRF-Token header; a cross-site page
// can make the browser send the cookie but cannot read it to set the header.
// Bearer-token clients are exempt because browsers never attach that header
// on their own.
func CSRFMiddleware(secureCookie bool, auditLogger *audit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",           // Domain (empty = current domain)
				secureCookie, // HTTPS only outside development
				false,        // HttpOnly = false so JS can read it
			)
			csrfCookie = newToken
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.GetHeader("Authorization") != "" {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFTokenHeaderName)
		if headerToken == "" || subtle.ConstantTimeCompare([]byte(headerToken), []byte(csrfCookie)) != 1 {
			msg := "Invalid CSRF token"
			if headerToken == "" {
				msg = "Missing CSRF token"
			}
			auditLogger.Log(c.Request.Context(), audit.Event{
				Event:     audit.EventCSRFRejected,
				ActorID:   c.GetString(string(domain.KeyUserID)),
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
			})
			response.Error(c, http.StatusForbidden, msg, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
