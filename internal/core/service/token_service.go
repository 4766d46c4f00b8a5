package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService signs and verifies HS256 bearer tokens. It is stateless:
// any instance holding the same secret can verify a token issued by any
// other, and there is no per-token revocation before expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting email, valid for the configured TTL.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := domain.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded claims.
// Malformed, tampered, mis-signed and expired tokens all collapse to
// domain.ErrUnauthorized; callers never see parser internals.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
