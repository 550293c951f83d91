// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
)

// Service provides the credential-management and session-issuance
// operations.
type Service struct {
	profiles ProfileRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   *slog.Logger
}

// NewService creates a new Service. All dependencies are required.
func NewService(profiles ProfileRepository, hasher PasswordHasher, tokens TokenIssuer) (*Service, error) {
	if profiles == nil {
		return nil, oops.Code("AUTH_INVALID_DEPS").Errorf("profile repository is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_INVALID_DEPS").Errorf("password hasher is required")
	}
	if tokens == nil {
		return nil, oops.Code("AUTH_INVALID_DEPS").Errorf("token issuer is required")
	}
	return &Service{
		profiles: profiles,
		hasher:   hasher,
		tokens:   tokens,
		logger:   slog.Default(),
	}, nil
}

// NewServiceWithLogger creates a Service with an explicit logger.
func NewServiceWithLogger(profiles ProfileRepository, hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		return nil, oops.Code("AUTH_INVALID_DEPS").Errorf("logger is required")
	}
	svc, err := NewService(profiles, hasher, tokens)
	if err != nil {
		return nil, err
	}
	svc.logger = logger
	return svc, nil
}

// Register hashes the password and persists the profile in its role's
// collection. Uniqueness is enforced by the storage layer's unique index;
// a duplicate username surfaces as ErrUsernameTaken. The returned profile
// carries the hash in PasswordHash, never the plaintext.
func (s *Service) Register(ctx context.Context, profile *Profile, password string) (*Profile, error) {
	if profile == nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").Errorf("profile is required")
	}
	if !profile.Role.Valid() {
		return nil, oops.Code("AUTH_INVALID_ROLE").
			With("role", profile.Role).
			Errorf("unknown role %q", profile.Role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}
	profile.PasswordHash = hash

	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, oops.Code("AUTH_USERNAME_TAKEN").
				With("role", profile.Role).
				With("username", profile.Username).
				Wrap(err)
		}
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "create profile").
			Wrap(err)
	}

	s.logger.Info("profile registered",
		"role", profile.Role.String(),
		"username", profile.Username,
	)
	return profile, nil
}

// Login verifies the credentials and issues a signed token embedding the
// profile's ID and role. An unknown username surfaces as ErrNotFound and a
// wrong password as ErrInvalidCredentials; the two stay distinguishable per
// the wire contract.
func (s *Service) Login(ctx context.Context, role Role, username, password string) (string, *Profile, error) {
	if !role.Valid() {
		return "", nil, oops.Code("AUTH_INVALID_ROLE").
			With("role", role).
			Errorf("unknown role %q", role)
	}

	profile, err := s.profiles.GetByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, oops.Code("AUTH_USER_NOT_FOUND").
				With("role", role.String()).
				Wrap(err)
		}
		return "", nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "get profile by username").
			Wrap(err)
	}

	valid, err := s.hasher.Verify(password, profile.PasswordHash)
	if err != nil {
		return "", nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(err)
	}
	if !valid {
		return "", nil, oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(profile.ID.String(), role)
	if err != nil {
		return "", nil, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "issue token").
			Wrap(err)
	}

	s.logger.Info("login succeeded",
		"role", role.String(),
		"username", profile.Username,
	)
	return token, profile, nil
}
