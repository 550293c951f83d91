// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package auth

import "errors"

// Sentinel errors shared across the auth layers. The HTTP boundary maps
// these onto the wire contract; repositories and services wrap them with
// additional context but keep them reachable via errors.Is.
var (
	// ErrNotFound is returned when a requested profile does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned when a signup reuses a username already
	// present in the same role's collection.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned when a login password does not match
	// the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
