// Package core implements the prioritization and scoring engine: converting
// raw assessment answers into scored items, the value/effort heatmap, the
// adoption score, the ROI projection, and the persisted report snapshot.
//
// Everything except the orchestrator in report.go is a pure computation:
// malformed-but-present numeric input is defaulted and clamped, never
// rejected, because survey data is user-supplied and must not abort the
// pipeline.
package core

import "math"

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// round10 rounds to one decimal place, matching the report's published
// score precision.
func round10(v float64) float64 {
	return math.Round(v*10) / 10
}
