package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authsvc "github.com/lingoport/portal/internal/app/service/auth"
	"github.com/lingoport/portal/internal/models"
)

type stubVerifier struct {
	claims *authsvc.Claims
	err    error
}

func (s *stubVerifier) VerifyToken(string) (*authsvc.Claims, error) {
	return s.claims, s.err
}

func callProtected(verifier TokenVerifier, header string) (*httptest.ResponseRecorder, *authsvc.Claims) {
	gin.SetMode(gin.TestMode)
	var seen *authsvc.Claims
	r := gin.New()
	r.GET("/protected", AuthRequired(verifier), func(c *gin.Context) {
		seen, _ = CurrentClaims(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seen
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	w, _ := callProtected(&stubVerifier{}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredNotBearer(t *testing.T) {
	w, _ := callProtected(&stubVerifier{}, "Basic abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	w, _ := callProtected(&stubVerifier{err: errors.New("bad")}, "Bearer whatever")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAttachesClaims(t *testing.T) {
	claims := &authsvc.Claims{UserID: 42, Email: "u@example.com", Role: models.RoleStudent}
	w, seen := callProtected(&stubVerifier{claims: claims}, "Bearer ok")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, seen)
	require.Equal(t, int64(42), seen.UserID)
}
