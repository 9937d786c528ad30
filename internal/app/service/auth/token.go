package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/pkg/config"
)

// ErrTokenInvalid covers every rejection: malformed token, bad signature,
// expired claims.
var ErrTokenInvalid = errors.New("invalid token")

// Claims is the auth token payload. Field names are part of the wire
// contract with existing clients.
type Claims struct {
	UserID int64       `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.StandardClaims
}

// TokenIssuer signs and verifies HS256 tokens with a process-wide secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{secret: []byte(cfg.Auth.Secret), ttl: cfg.TokenTTL()}
}

// Issue stamps iat=now and exp=iat+ttl and returns the signed token.
func (t *TokenIssuer) Issue(u *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.ttl).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks structure, signature and expiry and returns the claims.
func (t *TokenIssuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
