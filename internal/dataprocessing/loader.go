package dataprocessing

import (
	"context"
	"log/slog"
	"os"

	"csvproc/internal/config"
	apperrors "csvproc/internal/errors"
	"csvproc/internal/exporter"
	"csvproc/internal/infrastructure"
)

// Loader resolves the input table for a run. A missing source triggers
// sample generation; empty or unreadable sources are logged and yield an
// empty table rather than an error.
type Loader struct {
	paths  *config.Paths
	logger *slog.Logger
	writer *exporter.CSVWriter
}

// NewLoader creates a loader over the resolved path set
func NewLoader(paths *config.Paths, logger *slog.Logger) *Loader {
	return &Loader{
		paths:  paths,
		logger: infrastructure.WithComponent(logger, "loader"),
		writer: exporter.NewCSVWriter(paths),
	}
}

// Load produces the table for this run. When inputPath is empty the default
// input locator is used. Generated sample data is persisted to the default
// locator so subsequent runs read it as real input.
func (l *Loader) Load(ctx context.Context, inputPath string) *Table {
	effectivePath := inputPath
	if effectivePath == "" {
		effectivePath = l.paths.SampleInputCSV
	}

	if err := os.MkdirAll(l.paths.DataDir, 0755); err != nil {
		l.logger.ErrorContext(ctx, "cannot create data directory",
			slog.String("path", l.paths.DataDir),
			slog.String("error", err.Error()))
		return EmptyTable()
	}

	if config.FileExists(effectivePath) {
		return l.readExisting(ctx, effectivePath)
	}

	l.logger.WarnContext(ctx, "input file not found, generating sample data",
		slog.String("path", effectivePath))
	return l.generateSample(ctx)
}

// readExisting parses an existing source, degrading faults to an empty table
func (l *Loader) readExisting(ctx context.Context, path string) *Table {
	l.logger.InfoContext(ctx, "reading input data", slog.String("path", path))

	table, err := ParseCSV(path)
	if err != nil {
		if apperrors.IsEmptySource(err) {
			l.logger.ErrorContext(ctx, "input file is empty, cannot process",
				slog.String("path", path))
		} else {
			l.logger.ErrorContext(ctx, "error reading input data",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return EmptyTable()
	}

	l.logger.InfoContext(ctx, "input data loaded",
		slog.String("path", path),
		slog.Int("rows", table.RowCount()))
	return table
}

// generateSample synthesizes the sample dataset and persists it to the
// default input locator. A persist fault degrades to an empty table, same
// as any other load fault.
func (l *Loader) generateSample(ctx context.Context) *Table {
	table := NewSampleTable()
	l.logger.DebugContext(ctx, "sample table created", slog.Int("rows", table.RowCount()))

	if err := l.writer.WriteSimpleCSV(l.paths.SampleInputCSV, table.Header(), table.Rows()); err != nil {
		l.logger.ErrorContext(ctx, "error persisting generated sample data",
			slog.String("path", l.paths.SampleInputCSV),
			slog.String("error", err.Error()))
		return EmptyTable()
	}

	l.logger.InfoContext(ctx, "sample data generated and saved",
		slog.String("path", l.paths.SampleInputCSV),
		slog.Int("rows", table.RowCount()))
	return table
}
