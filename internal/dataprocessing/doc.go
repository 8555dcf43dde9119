// Package dataprocessing implements the batch transformation pipeline over
// an in-memory table.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Loader: resolves the input table from a CSV file or synthesizes a sample
// 2. Parser: reads a delimited file into typed records
// 3. Processor: applies the fixed derivation, filter, and classification stages
//
// # Usage
//
// Loading with the sample-data fallback:
//
//	loader := dataprocessing.NewLoader(paths, logger)
//	table := loader.Load(ctx, inputPath)
//
// Running the transformation sequence:
//
//	processor := dataprocessing.NewProcessor(logger)
//	result := processor.Process(ctx, table)
//
// # Data Flow
//
// The typical data flow through this package:
//
//	CSV file → Parser → Table → Processor → filtered Table → exporter
//
// # Error Handling
//
// The Loader is the fault boundary: empty, missing-after-all, or malformed
// sources are logged with path context and converted into an empty table,
// which the Processor short-circuits on. Parse errors carry the offending
// row number; nothing I/O-originated propagates to the caller as an error.
package dataprocessing
