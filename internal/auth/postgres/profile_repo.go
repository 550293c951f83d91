// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

// Package postgres implements auth persistence using PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/fieldpass/fieldpass/internal/auth"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it too, which keeps the unit tests off a live database.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProfileRepository implements auth.ProfileRepository using PostgreSQL.
// Each role maps to its own table; username uniqueness is a per-table
// unique index, so the duplicate check happens atomically at insert.
type ProfileRepository struct {
	db DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// tableFor maps a role onto its collection. The switch is the single place
// that knows the role-to-table binding.
func tableFor(role auth.Role) (string, error) {
	switch role {
	case auth.RolePlayer:
		return "players", nil
	case auth.RoleCoach:
		return "coaches", nil
	default:
		return "", oops.Code("AUTH_INVALID_ROLE").
			With("role", role).
			Errorf("no collection for role %q", role)
	}
}

// Create stores a new profile in its role's table. A unique-index violation
// on username surfaces as auth.ErrUsernameTaken.
func (r *ProfileRepository) Create(ctx context.Context, profile *auth.Profile) error {
	table, err := tableFor(profile.Role)
	if err != nil {
		return err
	}

	switch profile.Role {
	case auth.RolePlayer:
		_, err = r.db.Exec(ctx, `
			INSERT INTO players (
				id, full_name, username, dob, gender, sport, position,
				goals, age, age_group, password_hash, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			profile.ID.String(),
			profile.FullName,
			profile.Username,
			profile.DOB,
			profile.Gender,
			profile.Sport,
			profile.Position,
			profile.Goals,
			profile.Age,
			profile.AgeGroup,
			profile.PasswordHash,
			profile.CreatedAt,
			profile.UpdatedAt,
		)
	case auth.RoleCoach:
		_, err = r.db.Exec(ctx, `
			INSERT INTO coaches (
				id, full_name, username, gender, age, sport, experience,
				goals, password_hash, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`,
			profile.ID.String(),
			profile.FullName,
			profile.Username,
			profile.Gender,
			profile.Age,
			profile.Sport,
			profile.Experience,
			profile.Goals,
			profile.PasswordHash,
			profile.CreatedAt,
			profile.UpdatedAt,
		)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return oops.Code("PROFILE_USERNAME_TAKEN").
				With("table", table).
				With("username", profile.Username).
				Wrap(auth.ErrUsernameTaken)
		}
		return oops.Code("PROFILE_CREATE_FAILED").
			With("operation", "insert profile").
			With("table", table).
			With("username", profile.Username).
			Wrap(err)
	}
	return nil
}

// GetByUsername retrieves a profile by exact username match within the
// role's table.
func (r *ProfileRepository) GetByUsername(ctx context.Context, role auth.Role, username string) (*auth.Profile, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}

	var (
		profile auth.Profile
		row     pgx.Row
	)
	switch role {
	case auth.RolePlayer:
		row = r.db.QueryRow(ctx, `
			SELECT id, full_name, username, dob, gender, sport, position,
			       goals, age, age_group, password_hash, created_at, updated_at
			FROM players
			WHERE username = $1
		`, username)
		err = scanPlayer(row, &profile)
	case auth.RoleCoach:
		row = r.db.QueryRow(ctx, `
			SELECT id, full_name, username, gender, age, sport, experience,
			       goals, password_hash, created_at, updated_at
			FROM coaches
			WHERE username = $1
		`, username)
		err = scanCoach(row, &profile)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("PROFILE_NOT_FOUND").
			With("table", table).
			With("username", username).
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("PROFILE_GET_FAILED").
			With("operation", "get profile by username").
			With("table", table).
			With("username", username).
			Wrap(err)
	}
	profile.Role = role
	return &profile, nil
}

// scanPlayer scans a players row. Callers handle pgx.ErrNoRows.
func scanPlayer(row pgx.Row, p *auth.Profile) error {
	var (
		idStr     string
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&idStr,
		&p.FullName,
		&p.Username,
		&p.DOB,
		&p.Gender,
		&p.Sport,
		&p.Position,
		&p.Goals,
		&p.Age,
		&p.AgeGroup,
		&p.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return oops.Code("PROFILE_SCAN_FAILED").With("operation", "scan player").Wrap(err)
	}
	return finishScan(p, idStr, createdAt, updatedAt)
}

// scanCoach scans a coaches row. Callers handle pgx.ErrNoRows.
func scanCoach(row pgx.Row, p *auth.Profile) error {
	var (
		idStr     string
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&idStr,
		&p.FullName,
		&p.Username,
		&p.Gender,
		&p.Age,
		&p.Sport,
		&p.Experience,
		&p.Goals,
		&p.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err //nolint:wrapcheck // Callers wrap with context-specific info
		}
		return oops.Code("PROFILE_SCAN_FAILED").With("operation", "scan coach").Wrap(err)
	}
	return finishScan(p, idStr, createdAt, updatedAt)
}

func finishScan(p *auth.Profile, idStr string, createdAt, updatedAt time.Time) error {
	id, err := ulid.Parse(idStr)
	if err != nil {
		return oops.Code("PROFILE_INVALID_ID").
			With("operation", "parse profile id").
			With("id", idStr).
			Wrap(err)
	}
	p.ID = id
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return nil
}

// Compile-time interface check.
var _ auth.ProfileRepository = (*ProfileRepository)(nil)
