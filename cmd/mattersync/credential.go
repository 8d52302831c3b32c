// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCredentialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credential <contact-id>",
		Short: "Print the stored provisioning password of a contact's chat account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contactID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid contact id %q", args[0])
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			password, err := a.services.Provisioner.RevealCredential(cmd.Context(), contactID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}
}
