// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

// Package auth provides credential management and session issuance for
// FieldPass.
//
// # Domain Types
//
// Profiles should be created with NewPlayerProfile or NewCoachProfile, which
// assign an ID and timestamps and pin the role. Direct struct initialization
// bypasses that and may create invalid state.
//
// # Services
//
// Service coordinates the core operations: Register (hash + persist a new
// profile) and Login (lookup, verify, issue a signed token). Persistence is
// behind ProfileRepository, hashing behind PasswordHasher, and token signing
// behind TokenIssuer, so each can be swapped in tests.
package auth
