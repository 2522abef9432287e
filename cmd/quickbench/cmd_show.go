package main

import (
	"github.com/spf13/cobra"

	"quickbench/bench"
	"quickbench/report"
	"quickbench/store"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	var (
		backend string
		path    string
		asCSV   bool
	)

	cmd := &cobra.Command{
		Use:   "show [name...]",
		Short: "Print results saved in a result store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("store-backend") {
				cfg.Store.Backend = backend
			}
			if cmd.Flags().Changed("store-path") {
				cfg.Store.Path = path
			}

			s, err := store.Open(store.Config{Backend: cfg.Store.Backend, Path: cfg.Store.Path, Logger: logger})
			if err != nil {
				return err
			}
			defer s.Close()

			var results []bench.Result
			if len(args) == 0 {
				if results, err = s.List(); err != nil {
					return err
				}
			}
			for _, name := range args {
				res, err := s.Load(name)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			if asCSV {
				return report.WriteCSV(cmd.OutOrStdout(), results)
			}
			return report.WriteTable(cmd.OutOrStdout(), results)
		},
	}

	f := cmd.Flags()
	f.StringVar(&backend, "store-backend", "", "result store: bbolt, badger or pebble")
	f.StringVar(&path, "store-path", "", "result store file or directory")
	f.BoolVar(&asCSV, "csv", false, "print CSV instead of a table")
	return cmd
}
