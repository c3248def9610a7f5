package middleware

import (
	"context"
	"errors"
	"gradebook_backend/internal/model"
	"gradebook_backend/internal/util"
	"gradebook_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator validates a token and returns the session's claims and user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*util.Claims, *model.User, error)
}

// TokenFromRequest reads the session token from the Authorization header,
// then the session cookie, then the token query parameter.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("token")
}

// AuthMiddleware resolves the requester's Principal once per request.
func AuthMiddleware(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c, cookieName)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, user, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if !errors.Is(err, util.ErrSessionExpired) && !errors.Is(err, util.ErrAccountDisabled) {
				logger.Log.Error("authentication failed", zap.Error(err))
			}
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextClaimsKey, claims)
		c.Set(util.ContextPrincipalKey, util.NewPrincipal(user))
		c.Next()
	}
}

// RequireTAOrAdmin admits Teaching Assistants and admins.
func RequireTAOrAdmin() gin.HandlerFunc {
	return require(func(p *util.Principal) bool { return p.TAOrAdmin() })
}

func RequireStudent() gin.HandlerFunc {
	return require(func(p *util.Principal) bool { return p.IsStudent })
}

func RequireAdmin() gin.HandlerFunc {
	return require(func(p *util.Principal) bool { return p.IsAdmin })
}

func require(allowed func(*util.Principal) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := util.GetPrincipalFromContext(c)
		if p == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if !allowed(p) {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
