// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package main

import (
	"github.com/spf13/cobra"

	handler "github.com/civibridge/mattersync/internal/handler/http"
	"github.com/civibridge/mattersync/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the admin HTTP server and the scheduled sync job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			h := handler.NewHandler(a.services, a.log)

			srv, err := server.NewServer(h.Init(), a.cfg.Server, a.log)
			if err != nil {
				return err
			}

			a.services.Job.Start(ctx, a.cfg.Sync.Interval)
			defer a.services.Job.Stop()

			srv.RunServer()
			return nil
		},
	}
}
