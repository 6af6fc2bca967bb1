package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/prism/schema"
)

func sampleSnapshots() []schema.ReportSnapshot {
	at := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return []schema.ReportSnapshot{
		{
			ID:           "snap-1",
			AssessmentID: 42,
			GeneratedAt:  at,
			RankedItems: []schema.ScoredItem{
				{ID: "10", Name: "Support Agent", ValueScore: 5.0, EffortScore: 3.0, ValueLevel: schema.HighLevel, EffortLevel: schema.MediumLevel, Priority: schema.HighPriority},
				{ID: "11", Name: "Data Analyst", ValueScore: 1.7, EffortScore: 3.0, ValueLevel: schema.LowLevel, EffortLevel: schema.MediumLevel, Priority: schema.LowPriority},
			},
			AdoptionScore: schema.AdoptionScoreResult{Score: 72},
			ROI:           schema.ROIResult{AnnualROI: 150000, ROIRatio: 6.0},
		},
		{
			ID:           "snap-2",
			AssessmentID: 43,
			GeneratedAt:  at.Add(time.Hour),
		},
	}
}

func TestConvertSnapshots(t *testing.T) {
	reports, items := ConvertSnapshots(sampleSnapshots())

	require.Len(t, reports, 2)
	assert.Equal(t, "snap-1", reports[0].ReportID)
	assert.Equal(t, int32(2), reports[0].ItemCount)
	assert.InDelta(t, 72, reports[0].AdoptionScore, 0.001)
	assert.Equal(t, int32(0), reports[1].ItemCount)

	require.Len(t, items, 2)
	assert.Equal(t, int32(1), items[0].Rank)
	assert.Equal(t, "high", items[0].Priority)
	assert.Equal(t, int32(2), items[1].Rank)
}

func TestWriteParquetFiles(t *testing.T) {
	dir := t.TempDir()
	reports, items := ConvertSnapshots(sampleSnapshots())

	reportsPath := filepath.Join(dir, "reports.parquet")
	require.NoError(t, WriteReportsParquet(reports, reportsPath))

	itemsPath := filepath.Join(dir, "items.parquet")
	require.NoError(t, WriteScoredItemsParquet(items, itemsPath))

	for _, path := range []string{reportsPath, itemsPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
