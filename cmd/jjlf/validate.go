package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every change file resolves against the card catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			history, err := a.deploy(false).History(cmd.Context())
			if err != nil {
				return err
			}

			entries := 0
			for _, cs := range history.ChangeSets {
				entries += cs.Len()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d change files valid (%d entries)\n", len(history.ChangeSets), entries)
			if history.Junior != nil {
				fmt.Fprintf(out, "Junior Royale: %s (%d entries)\n", history.Junior.Name, history.Junior.Len())
			}
			return nil
		},
	}

	return cmd
}
