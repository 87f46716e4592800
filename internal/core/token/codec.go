// Package token signs and verifies the bearer tokens issued at login.
// The codec is deliberately ignorant of role semantics: it signs claims,
// verifies signatures, and enforces expiry, nothing more.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// Claims is the payload embedded in every issued token.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name"`
	jwt.RegisteredClaims
}

// Codec issues and decodes HS256 tokens with a fixed secret and TTL, both
// injected at construction so tests can use deterministic values.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

const defaultTTL = 24 * time.Hour

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user, valid for the configured TTL.
func (c *Codec) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		RoleID:   user.RoleID,
		RoleName: user.RoleName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies signature, structure, and expiry. Every failure mode maps
// to domain.ErrInvalidToken so clients cannot distinguish an expired token
// from a tampered one; callers may log the underlying cause themselves.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
