package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakline/prism/schema"
)

func TestNewHeatmapMatrixComplete(t *testing.T) {
	matrix := NewHeatmapMatrix()

	cells := 0
	for _, value := range schema.ValueLevels {
		for _, effort := range schema.EffortLevels {
			cell := matrix.Cell(value, effort)
			assert.NotNil(t, cell, "cell %s/%s missing", value, effort)
			assert.NotEmpty(t, cell.Priority)
			assert.NotNil(t, cell.Items, "empty cells carry an empty list, not nil")
			cells++
		}
	}
	assert.Equal(t, 9, cells)
	assert.Equal(t, 0, matrix.ItemCount())
}

func TestAssembleMatrixPlacement(t *testing.T) {
	items := []schema.ScoredItem{
		{ID: "1", Name: "Ops Lead", ValueScore: 5.0, EffortScore: 3.0, ValueLevel: schema.HighLevel, EffortLevel: schema.MediumLevel, Priority: schema.HighPriority},
		{ID: "2", Name: "Analyst", ValueScore: 1.7, EffortScore: 1.0, ValueLevel: schema.LowLevel, EffortLevel: schema.LowLevel, Priority: schema.LowPriority},
		{ID: "3", Name: "Support Agent", ValueScore: 5.0, EffortScore: 1.0, ValueLevel: schema.HighLevel, EffortLevel: schema.LowLevel, Priority: schema.HighPriority},
	}

	matrix, ranked := AssembleMatrix(items)

	assert.Equal(t, 3, matrix.ItemCount())
	assert.Len(t, matrix.Cell(schema.HighLevel, schema.MediumLevel).Items, 1)
	assert.Len(t, matrix.Cell(schema.HighLevel, schema.LowLevel).Items, 1)
	assert.Len(t, matrix.Cell(schema.LowLevel, schema.LowLevel).Items, 1)
	assert.Empty(t, matrix.Cell(schema.MediumLevel, schema.MediumLevel).Items)

	// Value descending, ties broken by lower effort.
	assert.Equal(t, []string{"3", "1", "2"}, rankedIDs(ranked))
}

// TestAssembleMatrixDeterministic checks that a full tie preserves input order.
func TestAssembleMatrixDeterministic(t *testing.T) {
	items := []schema.ScoredItem{
		{ID: "a", ValueScore: 3.3, EffortScore: 3.0, ValueLevel: schema.MediumLevel, EffortLevel: schema.MediumLevel},
		{ID: "b", ValueScore: 3.3, EffortScore: 3.0, ValueLevel: schema.MediumLevel, EffortLevel: schema.MediumLevel},
		{ID: "c", ValueScore: 3.3, EffortScore: 3.0, ValueLevel: schema.MediumLevel, EffortLevel: schema.MediumLevel},
	}

	for range 5 {
		_, ranked := AssembleMatrix(items)
		assert.Equal(t, []string{"a", "b", "c"}, rankedIDs(ranked))
	}
}

func TestAssembleMatrixEmpty(t *testing.T) {
	matrix, ranked := AssembleMatrix(nil)
	assert.Equal(t, 0, matrix.ItemCount())
	assert.Empty(t, ranked)
}

func rankedIDs(items []schema.ScoredItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
