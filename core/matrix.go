package core

import (
	"sort"

	"github.com/oakline/prism/schema"
)

// NewHeatmapMatrix builds an empty 3x3 matrix with every cell's priority
// resolved from the decision table. Cell priority is a property of the cell
// coordinates, never of occupancy.
func NewHeatmapMatrix() schema.HeatmapMatrix {
	matrix := make(map[schema.Level]map[schema.Level]*schema.HeatmapCell, len(schema.ValueLevels))
	for _, value := range schema.ValueLevels {
		row := make(map[schema.Level]*schema.HeatmapCell, len(schema.EffortLevels))
		for _, effort := range schema.EffortLevels {
			priority, _ := ResolvePriority(value, effort) // table is total
			row[effort] = &schema.HeatmapCell{Priority: priority, Items: []schema.ScoredItem{}}
		}
		matrix[value] = row
	}
	return schema.HeatmapMatrix{Matrix: matrix}
}

// AssembleMatrix places every scored item into its (value, effort) cell and
// returns the matrix with the ranked item list. Ranking is by value score
// descending, with lower effort winning ties; the sort is stable so equal
// items keep their input order and the result is deterministic.
func AssembleMatrix(items []schema.ScoredItem) (schema.HeatmapMatrix, []schema.ScoredItem) {
	matrix := NewHeatmapMatrix()

	for _, item := range items {
		cell := matrix.Cell(item.ValueLevel, item.EffortLevel)
		cell.Items = append(cell.Items, item)
	}

	ranked := make([]schema.ScoredItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ValueScore != ranked[j].ValueScore {
			return ranked[i].ValueScore > ranked[j].ValueScore
		}
		return ranked[i].EffortScore < ranked[j].EffortScore
	})

	return matrix, ranked
}
