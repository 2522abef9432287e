package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"quickbench/bench"
	"quickbench/config"
	"quickbench/generate"
	"quickbench/report"
	"quickbench/store"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		sizes      []int
		iterations int
		warmup     int
		csvPath    string
		mdPath     string
		jsonPath   string
		metricPath string
		backend    string
		storePath  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every configuration in the matrix and write the reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("sizes") {
				cfg.Sizes = sizes
			}
			if flags.Changed("iterations") {
				cfg.Iterations = iterations
			}
			if flags.Changed("warmup") {
				cfg.Warmup = warmup
			}
			if flags.Changed("csv") {
				cfg.Output.CSV = csvPath
			}
			if flags.Changed("markdown") {
				cfg.Output.Markdown = mdPath
			}
			if flags.Changed("json") {
				cfg.Output.JSON = jsonPath
			}
			if flags.Changed("metrics") {
				cfg.Output.Metrics = metricPath
			}
			if flags.Changed("store-backend") {
				cfg.Store.Backend = backend
			}
			if flags.Changed("store-path") {
				cfg.Store.Path = storePath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runBenchmark(cmd, cfg, logger)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&sizes, "sizes", nil, "array sizes to benchmark")
	f.IntVarP(&iterations, "iterations", "n", 0, "timed runs per size")
	f.IntVar(&warmup, "warmup", 0, "untimed runs per size before measuring")
	f.StringVar(&csvPath, "csv", "", "CSV report path")
	f.StringVar(&mdPath, "markdown", "", "markdown report path")
	f.StringVar(&jsonPath, "json", "", "JSON report path")
	f.StringVar(&metricPath, "metrics", "", "prometheus textfile path")
	f.StringVar(&backend, "store-backend", "", "result store: bbolt, badger or pebble")
	f.StringVar(&storePath, "store-path", "", "result store file or directory")
	return cmd
}

func runBenchmark(cmd *cobra.Command, cfg config.Config, logger *slog.Logger) error {
	matrix, err := buildMatrix(cfg.Matrix, generate.NewFaker())
	if err != nil {
		return err
	}
	setups := matrix.Build()

	logger.Info("벤치마크 시작",
		"configs", len(setups),
		"sizes", cfg.Sizes,
		"iterations", cfg.Iterations)

	metrics := bench.NewMetrics()
	runner := &bench.Runner{
		Sizes:         cfg.Sizes,
		Iterations:    cfg.Iterations,
		Warmup:        cfg.Warmup,
		KeepDurations: cfg.KeepDurations,
		Logger:        logger,
		Metrics:       metrics,
	}

	start := time.Now()
	results, runErr := runner.Run(cmd.Context(), setups)
	if runErr != nil {
		// 중단돼도 끝난 설정까지는 기록한다
		logger.Warn("벤치마크 중단", "completed", len(results), "error", runErr)
	}
	logger.Info("측정 완료", "elapsed", time.Since(start).Round(time.Millisecond))

	if err := writeOutputs(cmd.OutOrStdout(), cfg.Output, results, metrics, logger); err != nil {
		return err
	}
	if err := saveResults(cfg.Store, results, logger); err != nil {
		return err
	}
	return runErr
}

func writeOutputs(stdout io.Writer, out config.OutputConfig, results []bench.Result, metrics *bench.Metrics, logger *slog.Logger) error {
	now := time.Now()
	files := []struct {
		path  string
		write func(io.Writer) error
	}{
		{out.CSV, func(w io.Writer) error { return report.WriteCSV(w, results) }},
		{out.Markdown, func(w io.Writer) error { return report.WriteMarkdown(w, results, now) }},
		{out.JSON, func(w io.Writer) error { return report.WriteJSON(w, results) }},
	}

	for _, f := range files {
		if f.path == "" {
			continue
		}
		if err := report.SaveFile(f.path, f.write); err != nil {
			return err
		}
		logger.Info("리포트 저장", "path", f.path)
	}

	if out.Metrics != "" {
		if err := metrics.WriteTextfile(out.Metrics); err != nil {
			return err
		}
		logger.Info("지표 저장", "path", out.Metrics)
	}

	if out.Table {
		return report.WriteTable(stdout, results)
	}
	return nil
}

func saveResults(cfg config.StoreConfig, results []bench.Result, logger *slog.Logger) error {
	if cfg.Backend == "" || len(results) == 0 {
		return nil
	}

	s, err := store.Open(store.Config{Backend: cfg.Backend, Path: cfg.Path, Logger: logger})
	if err != nil {
		return err
	}
	if err := s.Save(results...); err != nil {
		s.Close()
		return errors.Wrap(err, "save results")
	}
	if err := s.Close(); err != nil {
		return errors.Wrap(err, "close store")
	}

	size, err := store.DiskUsage(cfg.Backend, cfg.Path)
	if err != nil {
		logger.Warn("저장소 크기 확인 실패", "error", err)
		return nil
	}
	logger.Info("결과 저장",
		"backend", cfg.Backend,
		"path", cfg.Path,
		"results", len(results),
		"size_mb", float64(size)/1024/1024)
	return nil
}
