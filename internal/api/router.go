// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fieldpass/fieldpass/internal/auth"
	"github.com/fieldpass/fieldpass/internal/observability"
)

// RouterConfig holds dependencies for the API router.
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Metrics     *observability.Metrics
}

// NewRouter creates the API router with all routes configured.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := mux.NewRouter()

	authHandler := NewAuthHandler(cfg.AuthService, cfg.Metrics, logger)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware(logger))
	api.Use(loggingMiddleware(logger))

	api.HandleFunc("/player/signup", authHandler.PlayerSignup).Methods(http.MethodPost)
	api.HandleFunc("/coach/signup", authHandler.CoachSignup).Methods(http.MethodPost)
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
