package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"csvproc/internal/config"
	"csvproc/internal/dataprocessing"
	"csvproc/internal/exporter"
	"csvproc/internal/infrastructure"
)

func main() {
	input := flag.String("input", "", "input CSV path (defaults to data/sample_input.csv relative to the executable)")
	output := flag.String("output", "", "output CSV path (defaults to data/processed_output.csv)")
	base := flag.String("base", "", "base directory for data and logs (defaults to the executable directory)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Resolve paths once from the configured entries; the -base flag wins
	// over the configured base directory, which wins over the executable
	// location
	baseDir := *base
	if baseDir == "" {
		baseDir = cfg.Paths.BaseDir
	}
	if baseDir == "" {
		baseDir, err = config.ExecutableDir()
		if err != nil {
			slog.Error("Failed to initialize paths", "error", err)
			os.Exit(1)
		}
	}
	pathsCfg := cfg.Paths
	pathsCfg.BaseDir = baseDir
	paths := pathsCfg.Resolve(baseDir)

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = filepath.Join(paths.BaseDir, cfg.Logging.FilePath)
	}

	logger, closeLog, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
		closeLog = func() error { return nil }
	}
	defer closeLog()

	ctx := infrastructure.ContextWithRunID(context.Background())

	outputPath := *output
	if outputPath == "" {
		outputPath = paths.ProcessedOutputCSV
	}

	logger.InfoContext(ctx, "processing run started",
		slog.String("input", *input),
		slog.String("output", outputPath),
		slog.String("base_dir", paths.BaseDir))

	loader := dataprocessing.NewLoader(paths, logger)
	table := loader.Load(ctx, *input)

	processor := dataprocessing.NewProcessor(logger)
	result := processor.Process(ctx, table)

	if result.Empty() {
		logger.InfoContext(ctx, "no data to save after processing")
	} else {
		writer := exporter.NewCSVWriter(paths)
		if err := writer.WriteSimpleCSV(outputPath, result.Header(), result.Rows()); err != nil {
			logger.ErrorContext(ctx, "failed to save processed data",
				slog.String("path", outputPath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.InfoContext(ctx, "processed data saved",
			slog.String("path", outputPath),
			slog.Int("rows", result.RowCount()))
	}

	logger.InfoContext(ctx, "processing run finished")
}
