package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quickbench/bench"
	"quickbench/generate"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var components bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the configuration names the matrix expands to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if components {
				pivots, partitions, fallbacks := bench.Keys()
				fmt.Fprintf(out, "pivots:       %v\n", pivots)
				fmt.Fprintf(out, "partitioners: %v\n", partitions)
				fmt.Fprintf(out, "fallbacks:    %v\n", fallbacks)
				return nil
			}

			cfg, _, err := root.load()
			if err != nil {
				return err
			}
			matrix, err := buildMatrix(cfg.Matrix, generate.NewFaker())
			if err != nil {
				return err
			}
			for _, s := range matrix.Build() {
				fmt.Fprintln(out, s.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&components, "components", false, "list registered pivot, partitioner and fallback names instead")
	return cmd
}
