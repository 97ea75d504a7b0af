package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"collective-lifecycle/internal/domain/auth"
	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/pkg/cookie"
	"collective-lifecycle/internal/usecase"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	ctxActorKey = "actor"

	HeaderProviderID = "X-Provider-Id"
	HeaderAPIKey     = "X-Api-Key"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token (cookie first, then Authorization header) into a pro actor.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !slices.Contains(roles, actor.Role) {
			abortJSON(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

type ProviderAuthMiddleware struct {
	authenticator usecase.ProviderAuthenticator
}

func NewProviderAuthMiddleware(authenticator usecase.ProviderAuthenticator) *ProviderAuthMiddleware {
	return &ProviderAuthMiddleware{authenticator: authenticator}
}

// RequireAPIKey authenticates public API calls from the provider id and key headers.
func (m *ProviderAuthMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, err := auth.NewProviderCredentials(c.GetHeader(HeaderProviderID), c.GetHeader(HeaderAPIKey))
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "Provider credentials required")
			return
		}

		actor, err := m.authenticator.Authenticate(c.Request.Context(), creds.ProviderID(), creds.APIKey())
		if err != nil {
			slog.Warn("Provider authentication failed", "provider_id", creds.ProviderID(), "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid provider credentials")
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}

	actor, ok := v.(shared.Actor)
	return actor, ok
}

// SetActor is used by tests that bypass token validation.
func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": msg}})
}
