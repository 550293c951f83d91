// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// DefaultTokenTTL is the token lifetime used when configuration does not
// override it.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the payload of a FieldPass session token. Subject carries the
// profile ID; Role carries the account kind so later requests can route to
// the right collection without a lookup.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer produces and verifies signed session tokens.
type TokenIssuer interface {
	// Issue creates a signed token asserting the profile's identity and role.
	Issue(profileID string, role Role) (string, error)

	// Verify validates a token's signature and expiry and returns its claims.
	Verify(token string) (*Claims, error)
}

// JWTIssuer implements TokenIssuer using HS256-signed JWTs.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer creates a JWTIssuer. The secret comes from configuration and
// must not be empty; ttl <= 0 falls back to DefaultTokenTTL.
func NewJWTIssuer(secret []byte, ttl time.Duration) (*JWTIssuer, error) {
	if len(secret) == 0 {
		return nil, oops.Code("AUTH_SECRET_REQUIRED").Errorf("token signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: secret, ttl: ttl}, nil
}

// Issue creates a signed token embedding the profile ID and role.
func (i *JWTIssuer) Issue(profileID string, role Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", oops.Code("AUTH_TOKEN_SIGN_FAILED").Wrap(err)
	}
	return signed, nil
}

// Verify validates the token and returns its claims.
func (i *JWTIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, oops.Code("AUTH_TOKEN_INVALID").
				With("alg", token.Header["alg"]).
				Errorf("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, oops.Code("AUTH_TOKEN_INVALID").Wrap(err)
	}
	if !token.Valid {
		return nil, oops.Code("AUTH_TOKEN_INVALID").Errorf("token is invalid")
	}
	if !claims.Role.Valid() {
		return nil, oops.Code("AUTH_TOKEN_INVALID").
			With("role", claims.Role).
			Errorf("token carries an unknown role")
	}
	return claims, nil
}

// Compile-time interface check.
var _ TokenIssuer = (*JWTIssuer)(nil)
