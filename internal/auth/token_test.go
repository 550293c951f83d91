// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldpass/fieldpass/internal/auth"
	"github.com/fieldpass/fieldpass/pkg/errutil"
)

var testSecret = []byte("test-signing-secret")

func TestNewJWTIssuer(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := auth.NewJWTIssuer(nil, time.Hour)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_SECRET_REQUIRED")
	})

	t.Run("accepts zero ttl", func(t *testing.T) {
		issuer, err := auth.NewJWTIssuer(testSecret, 0)
		require.NoError(t, err)
		require.NotNil(t, issuer)
	})
}

func TestJWTIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := auth.NewJWTIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("round trip preserves identity and role", func(t *testing.T) {
		profileID := ulid.Make().String()

		token, err := issuer.Issue(profileID, auth.RoleCoach)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, profileID, claims.Subject)
		assert.Equal(t, auth.RoleCoach, claims.Role)
	})

	t.Run("sets expiry from ttl", func(t *testing.T) {
		token, err := issuer.Issue(ulid.Make().String(), auth.RolePlayer)
		require.NoError(t, err)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		require.NotNil(t, claims.ExpiresAt)
		require.NotNil(t, claims.IssuedAt)
		assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		other, err := auth.NewJWTIssuer([]byte("a-different-secret"), time.Hour)
		require.NoError(t, err)

		token, err := other.Issue(ulid.Make().String(), auth.RolePlayer)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_TOKEN_INVALID")
	})

	t.Run("rejects expired token", func(t *testing.T) {
		now := time.Now()
		claims := &auth.Claims{
			Role: auth.RolePlayer,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   ulid.Make().String(),
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		require.NoError(t, err)

		_, err = issuer.Verify(expired)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_TOKEN_INVALID")
	})

	t.Run("rejects token with unknown role", func(t *testing.T) {
		claims := &auth.Claims{
			Role: auth.Role("referee"),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   ulid.Make().String(),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_TOKEN_INVALID")
	})

	t.Run("rejects unsigned token", func(t *testing.T) {
		claims := &auth.Claims{
			Role: auth.RolePlayer,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: ulid.Make().String(),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Verify(unsigned)
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		require.Error(t, err)
	})
}
