package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authdomain "saypal-backend/internal/auth/domain"
)

// tokenKind selects the claim set a token is encoded with.
type tokenKind int

const (
	kindAccess tokenKind = iota
	kindRefresh
)

// tokenClaims is the full claim set carried by both token kinds. Refresh
// marks refresh tokens; ForceTOTP marks access tokens that may not be used
// until the second factor is cleared.
type tokenClaims struct {
	jwt.RegisteredClaims
	Refresh   bool `json:"refresh,omitempty"`
	ForceTOTP bool `json:"force_totp,omitempty"`
}

// tokenCodec signs and verifies bearer tokens. Verification is stateless so
// any request can validate an access token without a database round-trip;
// only refresh tokens additionally go through the store.
type tokenCodec struct {
	secret []byte
	method jwt.SigningMethod
}

func newTokenCodec(secret, algorithm string) (*tokenCodec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &tokenCodec{secret: []byte(secret), method: method}, nil
}

func (c *tokenCodec) encode(subject string, kind tokenKind, forceTOTP bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Refresh:   kind == kindRefresh,
		ForceTOTP: forceTOTP,
	}
	if kind == kindRefresh {
		// exp/iat have second resolution, so two refresh tokens minted in the
		// same second would otherwise serialize to the same string and violate
		// the store's (token, user) uniqueness.
		claims.ID = uuid.New().String()
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// decode verifies the signature, the algorithm and the expiry. Every failure
// collapses to ErrInvalidToken; the caller never learns which check tripped.
func (c *tokenCodec) decode(tokenString string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}))
	if err != nil || !token.Valid {
		return nil, authdomain.ErrInvalidToken
	}
	return claims, nil
}
