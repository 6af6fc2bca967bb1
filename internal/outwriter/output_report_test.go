package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Output:      schema.TextOut,
		Precision:   1,
		ResultLimit: 25,
	}
}

func testSnapshot() *schema.ReportSnapshot {
	items := []schema.ScoredItem{
		{ID: "10", Name: "Support Agent", Department: "CS", ValueScore: 5.0, EffortScore: 3.0, ValueLevel: schema.HighLevel, EffortLevel: schema.MediumLevel, Priority: schema.HighPriority},
		{ID: "11", Name: "Data Analyst", Department: "Ops", ValueScore: 1.7, EffortScore: 3.0, ValueLevel: schema.LowLevel, EffortLevel: schema.MediumLevel, Priority: schema.LowPriority},
	}

	matrix := schema.HeatmapMatrix{Matrix: map[schema.Level]map[schema.Level]*schema.HeatmapCell{}}
	for _, value := range schema.ValueLevels {
		matrix.Matrix[value] = map[schema.Level]*schema.HeatmapCell{}
		for _, effort := range schema.EffortLevels {
			matrix.Matrix[value][effort] = &schema.HeatmapCell{Priority: schema.MediumPriority, Items: []schema.ScoredItem{}}
		}
	}
	matrix.Matrix[schema.HighLevel][schema.MediumLevel].Items = items[:1]
	matrix.Matrix[schema.LowLevel][schema.MediumLevel].Items = items[1:]

	return &schema.ReportSnapshot{
		ID:               "snap-1",
		AssessmentID:     42,
		ExecutiveSummary: "Pilot Intake evaluated 2 role(s) for automation potential.",
		Heatmap:          matrix,
		RankedItems:      items,
		AdoptionScore: schema.AdoptionScoreResult{
			Score:        72,
			AdoptionRate: schema.AdoptionComponent{Input: 80, Normalized: 80, Weighted: 16},
		},
		ROI:         schema.ROIResult{AnnualROI: 150000, CostSavings: 85000, AdditionalRevenue: 65000, AIInvestment: 25000, ROIRatio: 6.0, PaybackMonths: 2.0},
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, testSnapshot(), testConfig()))
	out := buf.String()

	assert.Contains(t, out, "Report snap-1")
	assert.Contains(t, out, "Value / Effort Heatmap")
	assert.Contains(t, out, "Ranked Opportunities")
	assert.Contains(t, out, "Support Agent")
	assert.Contains(t, out, "AI Adoption Score: 72/100")
	assert.Contains(t, out, "$150,000")
	assert.Contains(t, out, "6.0x")
	assert.Contains(t, out, "2.0 months")
}

func TestWriteReportTextLimit(t *testing.T) {
	cfg := testConfig()
	cfg.ResultLimit = 1

	var buf bytes.Buffer
	require.NoError(t, writeReportText(&buf, testSnapshot(), cfg))
	out := buf.String()

	assert.Contains(t, out, "Support Agent")
	assert.Contains(t, out, "(showing 1 of 2 items)")
	assert.NotContains(t, out, "Data Analyst")
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReportCSV(&buf, testSnapshot(), testConfig()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "rank,id,name,department,value_score,effort_score,value_level,effort_level,priority", lines[0])
	assert.Equal(t, "1,10,Support Agent,CS,5.0,3.0,high,medium,high", lines[1])
	assert.Equal(t, "2,11,Data Analyst,Ops,1.7,3.0,low,medium,low", lines[2])
}

func TestPrintReportJSONFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, PrintReport(testSnapshot(), cfg))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var decoded schema.ReportSnapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "snap-1", decoded.ID)
	assert.Len(t, decoded.RankedItems, 2)
}

func TestPrintReportParquet(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "report")

	require.NoError(t, PrintReport(testSnapshot(), cfg))

	for _, suffix := range []string{".reports.parquet", ".scored_items.parquet"} {
		info, err := os.Stat(cfg.OutputFile + suffix)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	// Missing output file is an error for parquet.
	cfg.OutputFile = ""
	assert.Error(t, PrintReport(testSnapshot(), cfg))
}

func TestWriteWeightsTable(t *testing.T) {
	w := &schema.OrganizationScoreWeights{
		OrganizationID: 7,
		AdoptionRate:   0.3, TimeSaved: 0.2, CostEfficiency: 0.2,
		PerformanceImprovement: 0.2, ToolSprawlReduction: 0.1,
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, writeWeightsTable(&buf, w))
	out := buf.String()

	assert.Contains(t, out, "organization 7")
	assert.Contains(t, out, "Adoption rate")
	assert.Contains(t, out, "0.300")
	assert.Contains(t, out, "1.000")
}

func TestWriteAssessmentsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeAssessmentsTable(&buf, nil))
	assert.Contains(t, buf.String(), "No assessments found.")

	buf.Reset()
	assessments := []schema.Assessment{
		{ID: 1, OrganizationID: 7, Title: "Pilot Intake", Industry: "Technology", Status: schema.SubmittedStatus},
	}
	require.NoError(t, writeAssessmentsTable(&buf, assessments))
	assert.Contains(t, buf.String(), "Pilot Intake")
}
