// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package errutil_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldpass/fieldpass/pkg/errutil"
)

func TestLogError(t *testing.T) {
	newLogger := func() (*slog.Logger, *bytes.Buffer) {
		var buf bytes.Buffer
		return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
	}

	t.Run("extracts oops code and context", func(t *testing.T) {
		logger, buf := newLogger()
		err := oops.Code("AUTH_USER_NOT_FOUND").
			With("role", "player").
			Errorf("no such user")

		errutil.LogError(logger, "login failed", err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "login failed", entry["msg"])
		assert.Equal(t, "AUTH_USER_NOT_FOUND", entry["code"])
		assert.Contains(t, entry["error"], "no such user")

		ctx, ok := entry["context"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "player", ctx["role"])
	})

	t.Run("plain errors log the message only", func(t *testing.T) {
		logger, buf := newLogger()

		errutil.LogError(logger, "something failed", errors.New("plain"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "something failed", entry["msg"])
		assert.Equal(t, "plain", entry["error"])
		assert.NotContains(t, entry, "code")
	})
}
