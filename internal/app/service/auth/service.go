package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	users  store.Storage[*models.User]
	tokens *TokenIssuer
	log    *zap.SugaredLogger
}

func NewService(users store.Storage[*models.User], tokens *TokenIssuer, log *zap.SugaredLogger) *Service {
	return &Service{users: users, tokens: tokens, log: log}
}

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// Register creates a user with a bcrypt-hashed password and issues a token.
// New accounts default to the student role.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	existing, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         models.RoleStudent,
	})
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	s.log.Infow("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login checks credentials and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify resolves a bearer token to the stored user.
func (s *Service) Verify(ctx context.Context, raw string) (*models.User, *Claims, error) {
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrTokenInvalid
		}
		return nil, nil, err
	}
	return user, claims, nil
}

// VerifyToken exposes claim verification for middleware without a user lookup.
func (s *Service) VerifyToken(raw string) (*Claims, error) {
	return s.tokens.Verify(raw)
}

func (s *Service) findByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u, nil
		}
	}
	return nil, nil
}
