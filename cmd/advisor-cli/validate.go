package main

import (
	"fmt"

	"stream-advisor/internal/engine/streamscorer"

	"github.com/spf13/cobra"
)

var validateProfilesCmd = &cobra.Command{
	Use:   "validate-profiles",
	Short: "Check the stream profile and rule tables for consistency",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := streamscorer.ValidateProfiles(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d stream profiles OK\n", len(streamscorer.Streams()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(validateProfilesCmd)
}
