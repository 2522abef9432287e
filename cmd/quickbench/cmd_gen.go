package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quickbench/config"
	"quickbench/generate"
)

func newGenCmd() *cobra.Command {
	var (
		g    config.GeneratorConfig
		size int
		out  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a dataset file usable by the \"file\" generator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := g.Validate(); err != nil {
				return err
			}
			gen, err := newGenerator(g, generate.NewFaker())
			if err != nil {
				return err
			}
			if err := generate.WriteFile(out, gen.Generate(size)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d values to %s\n", size, out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&g.Kind, "kind", config.KindRandom, "random, seeded, sorted, reversed, few-unique or file")
	f.IntVar(&g.Min, "min", 0, "lower bound (inclusive) for random values")
	f.IntVar(&g.Max, "max", 1000000, "upper bound (exclusive) for random values")
	f.Uint64Var(&g.Seed, "seed", 42, "seed for the seeded generator")
	f.IntVar(&g.Unique, "unique", 10, "distinct values for few-unique")
	f.StringVar(&g.Path, "from", "", "source dataset for the file generator")
	f.IntVar(&size, "size", 100000, "number of values")
	f.StringVarP(&out, "out", "o", "test_data.txt", "output file")
	return cmd
}
