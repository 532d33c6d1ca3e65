package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/pkg/cookie"
	"campsite-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey  = "actor"
	ctxClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth aborts with 401 unless a valid access token is sent as cookie or bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, policy.ErrUnauthenticated, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateAccessToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid token is present and otherwise lets the request through
// as anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.tokenValidator.ValidateAccessToken(token)
		if err != nil {
			c.Next()
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setActor(c *gin.Context, actor policy.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": actor.UserID.String(),
		"role":    actor.Role.String(),
	})
}

// GetActor returns the request's actor; the zero Actor (anonymous) when no token was accepted.
func GetActor(c *gin.Context) policy.Actor {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return policy.Actor{}
	}
	actor, _ := v.(policy.Actor)
	return actor
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor := GetActor(c)
	return actor.UserID, actor.IsAuthenticated()
}
