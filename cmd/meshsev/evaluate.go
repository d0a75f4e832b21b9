package main

import (
	"github.com/spf13/cobra"

	"github.com/tessellate-io/meshsev/internal/config"
	"github.com/tessellate-io/meshsev/internal/evaluator"
)

func evaluateCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <vehicle_id> <mesh_idx>",
		Short: "Score a persisted severity model against one mesh variant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return evaluator.FromConfig(cfg).Evaluate(args[0], args[1])
		},
	}
}
