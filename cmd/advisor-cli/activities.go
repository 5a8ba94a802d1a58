package main

import (
	"fmt"
	"text/tabwriter"

	"stream-advisor/pkg/registry"

	"github.com/spf13/cobra"
)

var registryPath string

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Validate and list the worker activity registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := registry.LoadRegistry(registryPath)
		if err != nil {
			return err
		}
		if err := reg.Validate(); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TASK TYPE\tSTATUS\tTIMEOUT\tRETRIES")
		for _, a := range reg.Activities {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", a.TaskType, a.Status, a.Timeout, a.Retries)
		}
		return tw.Flush()
	},
}

func init() {
	activitiesCmd.Flags().StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")
	rootCmd.AddCommand(activitiesCmd)
}
