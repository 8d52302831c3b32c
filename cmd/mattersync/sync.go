// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package main

import (
	"github.com/spf13/cobra"

	"github.com/civibridge/mattersync/models"
)

func newSyncToChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-to-mm",
		Short: "Push CiviCRM group membership into the linked Mattermost channels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFullSync(cmd, models.DirectionToChat)
		},
	}
}

func newSyncToCRMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-to-civicrm",
		Short: "Push Mattermost channel membership into the linked CiviCRM groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFullSync(cmd, models.DirectionToCRM)
		},
	}
}

func runFullSync(cmd *cobra.Command, direction models.Direction) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.services.Sync.FullSync(ctx, direction)
	if err != nil {
		return err
	}

	// per-item failures are already counted in the report; the run itself
	// succeeded, so the exit code stays zero
	printReport(cmd, report)
	return nil
}
