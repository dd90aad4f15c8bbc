package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"examsched/internal/domain/identity"
	"examsched/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, identity.Principal{Subject: subject, Role: role})
		c.Set("jwt_claims", map[string]any{
			"subject": subject.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (identity.Principal, bool) {
	val, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return identity.Principal{}, false
	}

	principal, ok := val.(identity.Principal)
	return principal, ok
}
