// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/civibridge/mattersync/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	skipStyle   = lipgloss.NewStyle().Faint(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func printReport(cmd *cobra.Command, report models.SyncReport) {
	out := cmd.OutOrStdout()

	for _, action := range report.Actions {
		fmt.Fprintln(out, renderAction(action))
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(
		"added %d, removed %d, skipped %d, failed %d",
		report.Added, report.Removed, report.Skipped, report.Failed,
	)))
}

func renderAction(action models.SyncAction) string {
	subject := action.Subject
	if subject == "" {
		subject = fmt.Sprintf("contact %d / user %s", action.ContactID, action.UserID)
	}
	line := fmt.Sprintf("%-9s group %d  channel %s  %s", action.Op, action.GroupID, action.ChannelID, subject)

	if action.Failed() {
		return failStyle.Render(line + "  " + action.Err)
	}

	switch action.Op {
	case models.OpAdd, models.OpProvision:
		return addStyle.Render(line)
	case models.OpRemove, models.OpDeactivate:
		return removeStyle.Render(line)
	default:
		return skipStyle.Render(line)
	}
}
