// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldpass/fieldpass/internal/auth"
	"github.com/fieldpass/fieldpass/pkg/errutil"
)

func TestNewPlayerProfile(t *testing.T) {
	t.Run("creates profile with fresh identity", func(t *testing.T) {
		profile, err := auth.NewPlayerProfile(auth.PlayerFields{
			FullName: "Jordan Reyes",
			Username: "jreyes",
			DOB:      "2008-03-14",
			Gender:   "male",
			Sport:    "soccer",
			Position: "midfielder",
			Goals:    "make varsity",
			Age:      17,
			AgeGroup: "U18",
		})
		require.NoError(t, err)

		assert.Equal(t, auth.RolePlayer, profile.Role)
		assert.Equal(t, "jreyes", profile.Username)
		assert.Equal(t, "midfielder", profile.Position)
		assert.Equal(t, "U18", profile.AgeGroup)
		assert.NotZero(t, profile.ID)
		assert.False(t, profile.CreatedAt.IsZero())
		assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
		assert.Empty(t, profile.PasswordHash, "hash is filled in by Register, not construction")
		assert.Empty(t, profile.Experience, "coach-only field stays empty")
	})

	t.Run("distinct profiles get distinct IDs", func(t *testing.T) {
		p1, err := auth.NewPlayerProfile(auth.PlayerFields{Username: "a"})
		require.NoError(t, err)
		p2, err := auth.NewPlayerProfile(auth.PlayerFields{Username: "a"})
		require.NoError(t, err)
		assert.NotEqual(t, p1.ID, p2.ID)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := auth.NewPlayerProfile(auth.PlayerFields{FullName: "No Name"})
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_USERNAME_REQUIRED")
	})
}

func TestNewCoachProfile(t *testing.T) {
	t.Run("creates profile with coach fields", func(t *testing.T) {
		profile, err := auth.NewCoachProfile(auth.CoachFields{
			FullName:   "Sam Okafor",
			Username:   "sokafor",
			Gender:     "female",
			Age:        41,
			Sport:      "basketball",
			Experience: "12 years",
			Goals:      "state championship",
		})
		require.NoError(t, err)

		assert.Equal(t, auth.RoleCoach, profile.Role)
		assert.Equal(t, "sokafor", profile.Username)
		assert.Equal(t, "12 years", profile.Experience)
		assert.NotZero(t, profile.ID)
		assert.Empty(t, profile.DOB, "player-only fields stay empty")
		assert.Empty(t, profile.Position)
		assert.Empty(t, profile.AgeGroup)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := auth.NewCoachProfile(auth.CoachFields{FullName: "No Name"})
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "AUTH_USERNAME_REQUIRED")
	})
}
