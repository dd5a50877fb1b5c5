package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inovaindustria/industria-api/internal/core/domain"
)

// Issuer is the fixed issuer claim stamped on every token and required
// back during verification.
const Issuer = "inova-industria-api"

// DefaultTokenTTL is the validity window applied when configuration does
// not provide one.
const DefaultTokenTTL = 2 * time.Hour

var ErrTokenInvalid = errors.New("invalid token")

// Claims is the JWT payload: the registered claim set plus the account's
// role and tenant. TenantID is absent for SUPER_ADMIN accounts.
type Claims struct {
	Role     string  `json:"role"`
	TenantID *string `json:"tenantId,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed identity tokens handed out at
// login. The secret and TTL are fixed at construction and never mutated, so
// a single instance is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService signing with secret. A non-positive
// ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token asserting the client's identity and role. A signing
// failure is an internal error and must surface to the caller, never be
// swallowed.
func (ts *TokenService) Issue(client *domain.Client) (string, error) {
	now := ts.now()
	claims := Claims{
		Role:     string(client.Role),
		TenantID: client.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   client.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, issuer and expiry, returning the claims on
// success. Every failure collapses into ErrTokenInvalid; the wrapped detail
// is for server-side logs only and must not reach clients.
func (ts *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return ts.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: missing role", ErrTokenInvalid)
	}

	return claims, nil
}
