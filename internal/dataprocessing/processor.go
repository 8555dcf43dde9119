package dataprocessing

import (
	"context"
	"log/slog"

	"csvproc/internal/infrastructure"
)

// divisorEpsilon keeps value2/value1 defined when value1 is zero. Zero rows
// still produce a very large quotient rather than an error.
const divisorEpsilon = 1e-6

// Thresholds of the fixed transformation sequence
const (
	value1FilterThreshold = 20
	value1HighThreshold   = 35
)

// Processor applies the fixed transformation sequence to a table
type Processor struct {
	logger *slog.Logger
}

// NewProcessor creates a processor reporting to the given logger
func NewProcessor(logger *slog.Logger) *Processor {
	return &Processor{logger: infrastructure.WithComponent(logger, "processor")}
}

// Process runs the transformation sequence: derive value1_plus_10 and
// value2_div_value1 on every row, filter to value1 > 20, then classify
// value1_type on the surviving rows. An empty input is returned unchanged
// with no columns added. The filtered result is an independent copy and
// never aliases the input's backing storage.
func (p *Processor) Process(ctx context.Context, table *Table) *Table {
	if table.Empty() {
		p.logger.InfoContext(ctx, "input table is empty, no transformations applied")
		return table
	}

	p.logger.InfoContext(ctx, "starting transformations",
		slog.Int("rows", table.RowCount()))

	for i := range table.Records {
		table.Records[i].Value1Plus10 = table.Records[i].Value1 + 10
	}
	table.addColumn(ColumnValue1Plus10)
	p.logger.DebugContext(ctx, "derived column", slog.String("column", ColumnValue1Plus10))

	for i := range table.Records {
		rec := &table.Records[i]
		rec.Value2DivValue1 = rec.Value2 / (float64(rec.Value1) + divisorEpsilon)
	}
	table.addColumn(ColumnValue2DivValue1)
	p.logger.DebugContext(ctx, "derived column", slog.String("column", ColumnValue2DivValue1))

	filtered := filterByValue1(table)
	p.logger.InfoContext(ctx, "filtered rows",
		slog.Int("rows_before", table.RowCount()),
		slog.Int("rows_after", filtered.RowCount()))

	if filtered.Empty() {
		p.logger.DebugContext(ctx, "table empty after filtering, classification skipped")
		return filtered
	}

	for i := range filtered.Records {
		rec := &filtered.Records[i]
		if rec.Value1 > value1HighThreshold {
			rec.Value1Type = Value1TypeHigh
		} else {
			rec.Value1Type = Value1TypeMedium
		}
	}
	filtered.addColumn(ColumnValue1Type)
	p.logger.DebugContext(ctx, "derived column", slog.String("column", ColumnValue1Type))

	return filtered
}

// filterByValue1 copies the rows passing the threshold into a new table,
// preserving their relative order
func filterByValue1(table *Table) *Table {
	filtered := &Table{Columns: table.Header()}
	for _, rec := range table.Records {
		if rec.Value1 > value1FilterThreshold {
			filtered.Records = append(filtered.Records, rec)
		}
	}
	return filtered
}
