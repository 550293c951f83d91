// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package api

import (
	"encoding/json"
	"net/http"
)

// errorBody is the failure envelope for every endpoint: {"error": message}.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a {"error": message} response with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}
