// Package exporter writes tabular results to CSV files. It owns the output
// side of the file contract: header row, record rows, optional append and
// UTF-8 BOM, with relative paths resolved under the configured data
// directory.
package exporter
