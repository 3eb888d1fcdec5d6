package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/auth"
)

const (
	// ParticipantIDKey is the context key for the authenticated participant ID.
	ParticipantIDKey = "participant_id"
	// AccountIDKey is the context key for the authenticated account ID.
	AccountIDKey = "account_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey = "email"
)

// GetParticipantID extracts the authenticated participant ID from the context.
// Returns empty string if not found.
func GetParticipantID(c *gin.Context) string {
	return c.GetString(ParticipantIDKey)
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}

// bearerToken returns the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ParticipantIDKey, claims.ParticipantID)
	c.Set(AccountIDKey, claims.AccountID)
	c.Set(EmailKey, claims.Email)
}

// RequireAuth returns a middleware that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the participant ID and email to the request context.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Already validated by OptionalAuth
		if GetParticipantID(c) != "" {
			c.Next()
			return
		}

		token, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": err.Error()})
			return
		}
		if jwtManager == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": auth.ErrInvalidToken.Error()})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth returns a middleware that validates JWT tokens if present, but allows
// requests without authentication. Useful for endpoints that have different behavior
// for authenticated vs unauthenticated users.
func OptionalAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtManager == nil {
			c.Next()
			return
		}
		if token, err := bearerToken(c); err == nil {
			// Validate token (ignore errors - optional auth)
			if claims, err := jwtManager.Validate(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAuthOnceEnrolled behaves like RequireAuth once enrolled reports true.
// Until the first account exists requests pass without a token, so the first
// participant and its account can be created. A failing check requires a token.
func RequireAuthOnceEnrolled(jwtManager *auth.JWTManager, enrolled func(context.Context) (bool, error)) gin.HandlerFunc {
	requireAuth := RequireAuth(jwtManager)
	return func(c *gin.Context) {
		if ok, err := enrolled(c.Request.Context()); err == nil && !ok {
			c.Next()
			return
		}
		requireAuth(c)
	}
}
