package dataprocessing

import "math/rand"

// sampleCategories is the fixed label cycle of the synthesized dataset;
// its length fixes the sample size
var sampleCategories = []string{"A", "B", "A", "C", "B"}

// NewSampleTable synthesizes the demonstration dataset used when no input
// file exists: ids 1..5, categories cycling A,B,A,C,B, value1 drawn from
// [10,50) and value2 from [0,100).
func NewSampleTable() *Table {
	records := make([]Record, 0, len(sampleCategories))
	for i, category := range sampleCategories {
		records = append(records, Record{
			ID:       int64(i + 1),
			Category: category,
			Value1:   int64(10 + rand.Intn(40)),
			Value2:   rand.Float64() * 100,
		})
	}
	return NewTable(records...)
}
