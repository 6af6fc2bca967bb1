// Package parquet exports report snapshots to Parquet files using
// github.com/parquet-go/parquet-go, for downstream analytics tools.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/oakline/prism/schema"
)

// ReportRecord is one report snapshot flattened for Parquet export, one row
// per snapshot.
type ReportRecord struct {
	ReportID     string    `parquet:"report_id,snappy"`
	AssessmentID int64     `parquet:"assessment_id,snappy"`
	GeneratedAt  time.Time `parquet:"generated_at,snappy"`

	ItemCount     int32   `parquet:"item_count,snappy"`
	AdoptionScore float64 `parquet:"adoption_score,snappy"`

	AnnualROI     float64 `parquet:"annual_roi,snappy"`
	ROIRatio      float64 `parquet:"roi_ratio,snappy"`
	PaybackMonths float64 `parquet:"payback_months,snappy"`

	ExecutiveSummary string `parquet:"executive_summary,snappy"`
}

// ScoredItemRecord is one ranked item of a report snapshot, one row per
// item per snapshot.
type ScoredItemRecord struct {
	ReportID     string    `parquet:"report_id,snappy"`
	AssessmentID int64     `parquet:"assessment_id,snappy"`
	GeneratedAt  time.Time `parquet:"generated_at,snappy"`

	ItemID     string `parquet:"item_id,snappy"`
	Name       string `parquet:"name,snappy"`
	Department string `parquet:"department,snappy"`

	Rank        int32   `parquet:"rank,snappy"`
	ValueScore  float64 `parquet:"value_score,snappy"`
	EffortScore float64 `parquet:"effort_score,snappy"`
	ValueLevel  string  `parquet:"value_level,snappy"`
	EffortLevel string  `parquet:"effort_level,snappy"`
	Priority    string  `parquet:"priority,snappy"`
}

// ConvertSnapshots flattens snapshots into report and item records.
func ConvertSnapshots(snaps []schema.ReportSnapshot) ([]ReportRecord, []ScoredItemRecord) {
	reports := make([]ReportRecord, 0, len(snaps))
	var items []ScoredItemRecord

	for _, snap := range snaps {
		reports = append(reports, ReportRecord{
			ReportID:         snap.ID,
			AssessmentID:     snap.AssessmentID,
			GeneratedAt:      snap.GeneratedAt,
			ItemCount:        int32(len(snap.RankedItems)),
			AdoptionScore:    snap.AdoptionScore.Score,
			AnnualROI:        snap.ROI.AnnualROI,
			ROIRatio:         snap.ROI.ROIRatio,
			PaybackMonths:    snap.ROI.PaybackMonths,
			ExecutiveSummary: snap.ExecutiveSummary,
		})

		for rank, item := range snap.RankedItems {
			items = append(items, ScoredItemRecord{
				ReportID:     snap.ID,
				AssessmentID: snap.AssessmentID,
				GeneratedAt:  snap.GeneratedAt,
				ItemID:       item.ID,
				Name:         item.Name,
				Department:   item.Department,
				Rank:         int32(rank + 1),
				ValueScore:   item.ValueScore,
				EffortScore:  item.EffortScore,
				ValueLevel:   string(item.ValueLevel),
				EffortLevel:  string(item.EffortLevel),
				Priority:     string(item.Priority),
			})
		}
	}

	return reports, items
}

// WriteReportsParquet writes report records to a Parquet file. The schema is
// inferred from the ReportRecord struct tags.
func WriteReportsParquet(data []ReportRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteScoredItemsParquet writes scored-item records to a Parquet file.
func WriteScoredItemsParquet(data []ScoredItemRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}
