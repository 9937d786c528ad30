package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
)

func newTestService() *Service {
	return NewService(store.NewMemory[*models.User](), testIssuer(24), zap.NewNop().Sugar())
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	user, token, err := svc.Register(ctx, RegisterRequest{
		Email:    "Li.Wei@Example.com",
		Password: "secret123",
		Name:     "Li Wei",
		Phone:    "555-0101",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "li.wei@example.com", user.Email)
	require.Equal(t, models.RoleStudent, user.Role)
	require.NotEqual(t, "secret123", user.PasswordHash)

	logged, token2, err := svc.Login(ctx, "li.wei@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	require.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, _, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "secret123", Name: "A"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterRequest{Email: "DUP@example.com", Password: "secret123", Name: "B"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, _, err := svc.Register(ctx, RegisterRequest{Email: "a@example.com", Password: "secret123", Name: "A"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@example.com", "wrong-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyResolvesUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	user, token, err := svc.Register(ctx, RegisterRequest{Email: "v@example.com", Password: "secret123", Name: "V"})
	require.NoError(t, err)

	got, claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, user.ID, claims.UserID)
}

func TestVerifyUnknownUserRejected(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer(24)
	svc := NewService(store.NewMemory[*models.User](), issuer, zap.NewNop().Sugar())

	// token for a user that is not in the store
	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, _, err = svc.Verify(ctx, token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
