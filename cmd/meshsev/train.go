package main

import (
	"github.com/spf13/cobra"

	"github.com/tessellate-io/meshsev/internal/config"
	"github.com/tessellate-io/meshsev/internal/trainer"
)

func trainCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "train <vehicle_id>",
		Short: "Train a severity model from a vehicle's first-mesh variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation a failure is the run's, not the
			// caller's; don't echo usage for it.
			cmd.SilenceUsage = true
			return trainer.FromConfig(cfg).Train(args[0])
		},
	}
}
