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

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    auth.Role
		wantErr bool
	}{
		{name: "player", input: "player", want: auth.RolePlayer},
		{name: "coach", input: "coach", want: auth.RoleCoach},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "referee", wantErr: true},
		{name: "uppercase rejected", input: "Player", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.ParseRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				errutil.AssertErrorCode(t, err, "AUTH_INVALID_ROLE")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, auth.RolePlayer.Valid())
	assert.True(t, auth.RoleCoach.Valid())
	assert.False(t, auth.Role("referee").Valid())
	assert.False(t, auth.Role("").Valid())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "player", auth.RolePlayer.String())
	assert.Equal(t, "coach", auth.RoleCoach.String())
}
