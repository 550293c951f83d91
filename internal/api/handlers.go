// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

// Package api exposes the FieldPass HTTP surface.
//
// The wire contract is fixed: every failure body is {"error": message},
// conflict and credential failures are 400 (not 409/401), and the unknown-
// user and wrong-password messages stay distinct.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fieldpass/fieldpass/internal/auth"
	"github.com/fieldpass/fieldpass/internal/observability"
	"github.com/fieldpass/fieldpass/pkg/errutil"
)

// Wire-contract messages.
const (
	msgUsernameExists     = "Username already exists"
	msgMissingCredentials = "Missing credentials or role"
	msgUserNotFound       = "User not found"
	msgInvalidCredentials = "Invalid credentials"

	msgPlayerRegistered = "Player registered successfully"
	msgCoachRegistered  = "Coach registered successfully"

	msgPlayerSignupError = "Server error during player signup"
	msgCoachSignupError  = "Server error during coach signup"
	msgLoginError        = "Server error during login"
)

// AuthHandler handles signup and login endpoints.
type AuthHandler struct {
	svc     *auth.Service
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewAuthHandler creates an AuthHandler. metrics may be nil when the
// observability listener is disabled.
func NewAuthHandler(svc *auth.Service, metrics *observability.Metrics, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{svc: svc, metrics: metrics, logger: logger}
}

type playerSignupRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Sport    string `json:"sport"`
	Position string `json:"position"`
	Goals    string `json:"goals"`
	Age      int    `json:"age"`
	AgeGroup string `json:"ageGroup"`
	Password string `json:"password"`
}

type coachSignupRequest struct {
	FullName   string `json:"fullName"`
	Username   string `json:"username"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
	Sport      string `json:"sport"`
	Experience string `json:"experience"`
	Goals      string `json:"goals"`
	Password   string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// profileResponse is a profile as exposed over the wire. The password hash
// is deliberately stripped.
type profileResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Gender   string `json:"gender"`
	Sport    string `json:"sport"`
	Goals    string `json:"goals"`
	Age      int    `json:"age"`

	DOB      string `json:"dob,omitempty"`
	Position string `json:"position,omitempty"`
	AgeGroup string `json:"ageGroup,omitempty"`

	Experience string `json:"experience,omitempty"`
}

func profileFromModel(p *auth.Profile) profileResponse {
	return profileResponse{
		ID:         p.ID.String(),
		FullName:   p.FullName,
		Username:   p.Username,
		Gender:     p.Gender,
		Sport:      p.Sport,
		Goals:      p.Goals,
		Age:        p.Age,
		DOB:        p.DOB,
		Position:   p.Position,
		AgeGroup:   p.AgeGroup,
		Experience: p.Experience,
	}
}

// PlayerSignup handles POST /api/player/signup.
func (h *AuthHandler) PlayerSignup(w http.ResponseWriter, r *http.Request) {
	var req playerSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.recordSignup(auth.RolePlayer, "invalid")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password == "" {
		h.recordSignup(auth.RolePlayer, "invalid")
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	profile, err := auth.NewPlayerProfile(auth.PlayerFields{
		FullName: req.FullName,
		Username: req.Username,
		DOB:      req.DOB,
		Gender:   req.Gender,
		Sport:    req.Sport,
		Position: req.Position,
		Goals:    req.Goals,
		Age:      req.Age,
		AgeGroup: req.AgeGroup,
	})
	if err != nil {
		h.recordSignup(auth.RolePlayer, "invalid")
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}

	stored, err := h.svc.Register(r.Context(), profile, req.Password)
	if err != nil {
		h.writeSignupError(w, err, auth.RolePlayer, msgPlayerSignupError)
		return
	}

	h.recordSignup(auth.RolePlayer, "success")
	writeJSON(w, http.StatusOK, map[string]any{
		"message": msgPlayerRegistered,
		"player":  profileFromModel(stored),
	})
}

// CoachSignup handles POST /api/coach/signup.
func (h *AuthHandler) CoachSignup(w http.ResponseWriter, r *http.Request) {
	var req coachSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.recordSignup(auth.RoleCoach, "invalid")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password == "" {
		h.recordSignup(auth.RoleCoach, "invalid")
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	profile, err := auth.NewCoachProfile(auth.CoachFields{
		FullName:   req.FullName,
		Username:   req.Username,
		Gender:     req.Gender,
		Age:        req.Age,
		Sport:      req.Sport,
		Experience: req.Experience,
		Goals:      req.Goals,
	})
	if err != nil {
		h.recordSignup(auth.RoleCoach, "invalid")
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}

	stored, err := h.svc.Register(r.Context(), profile, req.Password)
	if err != nil {
		h.writeSignupError(w, err, auth.RoleCoach, msgCoachSignupError)
		return
	}

	h.recordSignup(auth.RoleCoach, "success")
	writeJSON(w, http.StatusOK, map[string]any{
		"message": msgCoachRegistered,
		"coach":   profileFromModel(stored),
	})
}

// Login handles POST /api/login. Presence of username, password, and role is
// checked before any datastore lookup happens.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	if req.Username == "" || req.Password == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	role, err := auth.ParseRole(req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	token, profile, err := h.svc.Login(r.Context(), role, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			h.recordLogin(role, "not_found")
			writeError(w, http.StatusBadRequest, msgUserNotFound)
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.recordLogin(role, "invalid_credentials")
			writeError(w, http.StatusBadRequest, msgInvalidCredentials)
		default:
			h.recordLogin(role, "error")
			errutil.LogError(h.logger, "login failed", err)
			writeError(w, http.StatusInternalServerError, msgLoginError)
		}
		return
	}

	h.recordLogin(role, "success")
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  profileFromModel(profile),
	})
}

// writeSignupError maps a registration failure onto the wire contract.
func (h *AuthHandler) writeSignupError(w http.ResponseWriter, err error, role auth.Role, serverErrMsg string) {
	if errors.Is(err, auth.ErrUsernameTaken) {
		h.recordSignup(role, "conflict")
		writeError(w, http.StatusBadRequest, msgUsernameExists)
		return
	}
	h.recordSignup(role, "error")
	errutil.LogError(h.logger, "signup failed", err)
	writeError(w, http.StatusInternalServerError, serverErrMsg)
}

func (h *AuthHandler) recordSignup(role auth.Role, status string) {
	if h.metrics != nil {
		h.metrics.SignupsTotal.WithLabelValues(role.String(), status).Inc()
	}
}

func (h *AuthHandler) recordLogin(role auth.Role, status string) {
	if h.metrics != nil {
		h.metrics.LoginsTotal.WithLabelValues(role.String(), status).Inc()
	}
}
