package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableHeaderIsACopy(t *testing.T) {
	table := NewTable()
	header := table.Header()

	require.Equal(t, BaseColumns(), header)
	header[0] = "mutated"
	assert.Equal(t, ColumnID, table.Columns[0])
}

func TestTableRows(t *testing.T) {
	table := NewTable(Record{ID: 3, Category: "C", Value1: 45, Value2: 40.25})
	table.addColumn(ColumnValue1Plus10)
	table.addColumn(ColumnValue2DivValue1)
	table.addColumn(ColumnValue1Type)
	table.Records[0].Value1Plus10 = 55
	table.Records[0].Value2DivValue1 = 0.5
	table.Records[0].Value1Type = Value1TypeHigh

	rows := table.Rows()

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"3", "C", "45", "40.25", "55", "0.5", "High"}, rows[0])
}

func TestTableRowsOnlyRendersPresentColumns(t *testing.T) {
	table := NewTable(Record{ID: 1, Category: "A", Value1: 15, Value2: 10})

	rows := table.Rows()

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"1", "A", "15", "10"}, rows[0])
}

func TestAddColumnIsIdempotent(t *testing.T) {
	table := NewTable()
	table.addColumn(ColumnValue1Plus10)
	table.addColumn(ColumnValue1Plus10)

	assert.Equal(t, append(BaseColumns(), ColumnValue1Plus10), table.Columns)
}

func TestEmptyTable(t *testing.T) {
	table := EmptyTable()

	assert.True(t, table.Empty())
	assert.Zero(t, table.RowCount())
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows())
}

func TestHasColumn(t *testing.T) {
	table := NewTable()

	assert.True(t, table.HasColumn(ColumnValue1))
	assert.False(t, table.HasColumn(ColumnValue1Type))
}
