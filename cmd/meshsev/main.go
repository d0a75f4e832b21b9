package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessellate-io/meshsev/internal/config"
	"github.com/tessellate-io/meshsev/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshsev: %v\n", err)
		os.Exit(1)
	}
	logging.Init(logging.ParseLevel(cfg.Logging.Level))

	root := &cobra.Command{
		Use:   "meshsev",
		Short: "Train and evaluate mesh severity models",
		Long:  "meshsev labels finite-element mesh defects by severity and trains a classifier that reproduces the labeling rules from per-element features.",
	}
	root.AddCommand(trainCommand(cfg), evaluateCommand(cfg))

	// Cobra prints the error (and, for argument mistakes, the usage text);
	// the process just needs the non-zero exit.
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
