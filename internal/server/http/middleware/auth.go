package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/domain/model"
	pkgAuth "github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// PrincipalContextKey is a gin context key for the authenticated principal.
const PrincipalContextKey = "principal"

// TokenVerifier checks bearer tokens and resolves their principal.
type TokenVerifier interface {
	VerifyToken(token string) (*pkgAuth.Principal, error)
}

// AuthRequired ensures the request carries a valid bearer token before
// reaching the handler.
func AuthRequired(verifier TokenVerifier, respond *response.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			respond.Fail(c, http.StatusUnauthorized, "authentication required")
			return
		}

		principal, err := verifier.VerifyToken(token)
		if err != nil {
			respond.Error(c, err)
			return
		}

		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

// AdminRequired rejects principals without the admin role. It must run
// after AuthRequired.
func AdminRequired(respond *response.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(PrincipalContextKey)
		principal, _ := val.(*pkgAuth.Principal)
		if !ok || principal == nil || principal.Role != model.RoleAdmin {
			respond.Fail(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
