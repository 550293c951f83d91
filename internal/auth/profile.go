// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package auth

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Profile represents a stored player or coach record. Role discriminates
// which collection the profile lives in and which of the optional fields
// apply: DOB, Position and AgeGroup are player-only, Experience is
// coach-only. Username uniqueness is scoped to the role's collection, so a
// player and a coach may share a username.
type Profile struct {
	ID           ulid.ULID
	Role         Role
	FullName     string
	Username     string
	Gender       string
	Sport        string
	Goals        string
	Age          int
	PasswordHash string

	// Player-only fields.
	DOB      string
	Position string
	AgeGroup string

	// Coach-only field.
	Experience string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerFields carries the role-specific signup attributes for a player.
type PlayerFields struct {
	FullName string
	Username string
	DOB      string
	Gender   string
	Sport    string
	Position string
	Goals    string
	Age      int
	AgeGroup string
}

// CoachFields carries the role-specific signup attributes for a coach.
type CoachFields struct {
	FullName   string
	Username   string
	Gender     string
	Age        int
	Sport      string
	Experience string
	Goals      string
}

// NewPlayerProfile creates a player profile with a fresh ID and timestamps.
// The password hash is filled in by Service.Register.
func NewPlayerProfile(f PlayerFields) (*Profile, error) {
	if f.Username == "" {
		return nil, oops.Code("AUTH_USERNAME_REQUIRED").Errorf("username is required")
	}
	now := time.Now().UTC()
	return &Profile{
		ID:        ulid.Make(),
		Role:      RolePlayer,
		FullName:  f.FullName,
		Username:  f.Username,
		DOB:       f.DOB,
		Gender:    f.Gender,
		Sport:     f.Sport,
		Position:  f.Position,
		Goals:     f.Goals,
		Age:       f.Age,
		AgeGroup:  f.AgeGroup,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewCoachProfile creates a coach profile with a fresh ID and timestamps.
func NewCoachProfile(f CoachFields) (*Profile, error) {
	if f.Username == "" {
		return nil, oops.Code("AUTH_USERNAME_REQUIRED").Errorf("username is required")
	}
	now := time.Now().UTC()
	return &Profile{
		ID:         ulid.Make(),
		Role:       RoleCoach,
		FullName:   f.FullName,
		Username:   f.Username,
		Gender:     f.Gender,
		Age:        f.Age,
		Sport:      f.Sport,
		Experience: f.Experience,
		Goals:      f.Goals,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ProfileRepository manages profile persistence. Implementations must
// enforce username uniqueness per role at the storage layer (a unique index,
// not a read-then-insert check) so concurrent signups cannot race.
type ProfileRepository interface {
	// Create stores a new profile in the collection selected by its role.
	// Returns ErrUsernameTaken if the username already exists there.
	Create(ctx context.Context, profile *Profile) error

	// GetByUsername retrieves a profile by exact username match within the
	// role's collection. Returns ErrNotFound if no profile matches.
	GetByUsername(ctx context.Context, role Role, username string) (*Profile, error)
}
