package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/vantran-dev/storefront/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Principal is the authenticated actor derived from a verified bearer token.
type Principal struct {
	UserID int64
	Role   model.Role
}

// TokenStrategy issues and verifies bearer tokens.
type TokenStrategy interface {
	Issue(userID int64, role model.Role) (string, error)
	Verify(token string) (*Principal, error)
}

// SigningDomain is one independently keyed token issuer. Customer and admin
// tokens are signed with different secrets.
type SigningDomain struct {
	Role   model.Role
	Secret []byte
}

type Options struct {
	TTL time.Duration
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTStrategy signs HS256 tokens per role domain and verifies incoming
// tokens by trying each configured domain in order.
type JWTStrategy struct {
	domains []SigningDomain
	ttl     time.Duration
}

// NewJWTStrategy builds JWTStrategy; verification trial order follows the
// order of domains.
func NewJWTStrategy(domains []SigningDomain, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{domains: domains, ttl: ttl}
}

// Issue signs a token with the secret of the domain matching the role.
func (s *JWTStrategy) Issue(userID int64, role model.Role) (string, error) {
	for _, d := range s.domains {
		if d.Role != role {
			continue
		}
		now := time.Now()
		claims := tokenClaims{
			Role: string(role),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   strconv.FormatInt(userID, 10),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			},
		}
		return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.Secret)
	}
	return "", fmt.Errorf("no signing domain for role %q", role)
}

// Verify decodes the token against each domain and returns the first
// successful principal.
func (s *JWTStrategy) Verify(token string) (*Principal, error) {
	for _, d := range s.domains {
		claims := &tokenClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return d.Secret, nil
		})
		if err != nil || !parsed.Valid {
			continue
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			continue
		}
		role := model.Role(claims.Role)
		if role == "" {
			role = d.Role
		}
		return &Principal{UserID: userID, Role: role}, nil
	}
	return nil, ErrInvalidToken
}
