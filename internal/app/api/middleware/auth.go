package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authsvc "github.com/lingoport/portal/internal/app/service/auth"
	"github.com/lingoport/portal/pkg/response"
)

const claimsKey = "authClaims"

// TokenVerifier is the subset of the auth service the middleware needs.
type TokenVerifier interface {
	VerifyToken(raw string) (*authsvc.Claims, error)
}

// AuthRequired rejects requests without a valid bearer token and stores
// the verified claims on the gin context.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err(response.CodeInvalidToken))
			return
		}
		claims, err := verifier.VerifyToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err(response.CodeInvalidToken))
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims stored by AuthRequired.
func CurrentClaims(c *gin.Context) (*authsvc.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*authsvc.Claims)
	return claims, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
