// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the FieldPass CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldpass",
		Short: "FieldPass - authentication backend for sports teams",
		Long: `FieldPass is the authentication backend for a sports-team
application. It registers players and coaches and issues signed session
tokens on login.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewStatusCmd())

	return cmd
}
