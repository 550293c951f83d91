// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package auth

import "github.com/samber/oops"

// Role discriminates the two account kinds. Each role has its own profile
// collection and its own username namespace.
type Role string

const (
	// RolePlayer is an athlete account.
	RolePlayer Role = "player"

	// RoleCoach is a coach account.
	RoleCoach Role = "coach"
)

// ParseRole converts a wire-level role string into a Role. Only the exact
// lowercase names are accepted.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePlayer:
		return RolePlayer, nil
	case RoleCoach:
		return RoleCoach, nil
	default:
		return "", oops.Code("AUTH_INVALID_ROLE").
			With("role", s).
			Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the known account kinds.
func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleCoach
}

// String returns the role's wire name.
func (r Role) String() string {
	return string(r)
}
