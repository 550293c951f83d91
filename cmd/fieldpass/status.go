// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FieldPass Contributors

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status subcommand, which probes a running
// server's health endpoint.
func NewStatusCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show status of a running FieldPass server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := &http.Client{Timeout: 5 * time.Second}
			url := fmt.Sprintf("http://%s/api/health", addr)

			resp, err := client.Get(url)
			if err != nil {
				return oops.Code("STATUS_PROBE_FAILED").With("url", url).Wrap(err)
			}
			defer resp.Body.Close() //nolint:errcheck // nothing useful to do with a close error here

			if resp.StatusCode != http.StatusOK {
				cmd.Printf("server at %s: unhealthy (status %d)\n", addr, resp.StatusCode)
				return oops.Code("STATUS_UNHEALTHY").With("status", resp.StatusCode).Errorf("server unhealthy")
			}

			cmd.Printf("server at %s: ok\n", addr)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:5000", "API server address")

	return cmd
}
