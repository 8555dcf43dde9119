package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	apperrors "csvproc/internal/errors"
)

// ParseCSV reads a delimited table from path. The first row is the header;
// the four base columns are located by name and parsed into typed records.
// An existing file with no data rows yields the empty-source condition,
// anything unparsable yields the malformed-source condition.
func ParseCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewMalformedSource(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewMalformedSource(path, err)
	}

	if len(rows) == 0 {
		return nil, apperrors.NewEmptySource(path)
	}

	header := rows[0]
	data := rows[1:]
	if len(data) == 0 {
		// Header-only files carry no rows, same condition as a bare file
		return nil, apperrors.NewEmptySource(path)
	}

	idx, err := columnIndexes(header)
	if err != nil {
		return nil, apperrors.NewMalformedSource(path, err)
	}

	records := make([]Record, 0, len(data))
	for i, row := range data {
		rec, err := parseRecord(row, idx)
		if err != nil {
			return nil, apperrors.NewMalformedSource(path, fmt.Errorf("row %d: %w", i+2, err))
		}
		records = append(records, rec)
	}

	return NewTable(records...), nil
}

// columnIndex positions of the base columns within the header
type columnIndex struct {
	id       int
	category int
	value1   int
	value2   int
}

func columnIndexes(header []string) (columnIndex, error) {
	idx := columnIndex{id: -1, category: -1, value1: -1, value2: -1}

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case ColumnID:
			idx.id = i
		case ColumnCategory:
			idx.category = i
		case ColumnValue1:
			idx.value1 = i
		case ColumnValue2:
			idx.value2 = i
		}
	}

	if idx.id < 0 || idx.category < 0 || idx.value1 < 0 || idx.value2 < 0 {
		return idx, fmt.Errorf("header %v is missing one of the required columns %v", header, BaseColumns())
	}
	return idx, nil
}

func parseRecord(row []string, idx columnIndex) (Record, error) {
	var rec Record

	if len(row) <= idx.id || len(row) <= idx.category || len(row) <= idx.value1 || len(row) <= idx.value2 {
		return rec, fmt.Errorf("row has %d fields, required columns out of range", len(row))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(row[idx.id]), 10, 64)
	if err != nil {
		return rec, fmt.Errorf("column %s: %w", ColumnID, err)
	}

	value1, err := strconv.ParseInt(strings.TrimSpace(row[idx.value1]), 10, 64)
	if err != nil {
		return rec, fmt.Errorf("column %s: %w", ColumnValue1, err)
	}

	value2, err := strconv.ParseFloat(strings.TrimSpace(row[idx.value2]), 64)
	if err != nil {
		return rec, fmt.Errorf("column %s: %w", ColumnValue2, err)
	}

	rec.ID = id
	rec.Category = strings.TrimSpace(row[idx.category])
	rec.Value1 = value1
	rec.Value2 = value2
	return rec, nil
}
