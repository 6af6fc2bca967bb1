package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/parquet"
	"github.com/oakline/prism/schema"
)

// PrintReport outputs a report snapshot, dispatching on the configured
// output format.
func PrintReport(snap *schema.ReportSnapshot, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, snap)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, snap, cfg)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeReportParquet(snap, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, snap, cfg)
		}, "Wrote report")
	}
}

// PrintReportList outputs the snapshot history for one assessment.
func PrintReportList(snaps []schema.ReportSnapshot, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, snaps)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportListTable(w, snaps)
		}, "Wrote report list")
	}
}

// writeReportListTable renders one row per stored snapshot, newest first.
func writeReportListTable(w io.Writer, snaps []schema.ReportSnapshot) error {
	if len(snaps) == 0 {
		fmt.Fprintln(w, "No report snapshots found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Generated", "Items", "Adoption", "Annual ROI"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, snap := range snaps {
		data = append(data, []string{
			snap.ID,
			snap.GeneratedAt.Format(contract.DateTimeFormat),
			strconv.Itoa(len(snap.RankedItems)),
			fmt.Sprintf("%.0f", snap.AdoptionScore.Score),
			contract.FormatMoney(snap.ROI.AnnualROI),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeReportText renders the full human-readable report: summary, heatmap,
// ranked items, adoption breakdown and ROI projection.
func writeReportText(w io.Writer, snap *schema.ReportSnapshot, cfg *contract.Config) error {
	fmt.Fprintf(w, "Report %s (assessment %d, generated %s)\n\n",
		snap.ID, snap.AssessmentID, snap.GeneratedAt.Format(contract.DateTimeFormat))

	if snap.ExecutiveSummary != "" {
		fmt.Fprintf(w, "%s\n\n", snap.ExecutiveSummary)
	}

	if err := writeHeatmapTable(w, &snap.Heatmap, cfg); err != nil {
		return err
	}
	if err := writeRankedTable(w, snap.RankedItems, cfg); err != nil {
		return err
	}
	if err := writeAdoptionTable(w, &snap.AdoptionScore, cfg); err != nil {
		return err
	}
	writeROISection(w, &snap.ROI)

	if snap.Commentary != "" {
		fmt.Fprintf(w, "\n%s\n", snap.Commentary)
	}
	return nil
}

// writeHeatmapTable renders the 3x3 value/effort matrix. Rows run from high
// to low value, columns from low to high effort, so the top-left cell is the
// strongest recommendation.
func writeHeatmapTable(w io.Writer, matrix *schema.HeatmapMatrix, cfg *contract.Config) error {
	fmt.Fprintln(w, "Value / Effort Heatmap")

	table := tablewriter.NewWriter(w)
	table.Header([]string{"", "Effort: Low", "Effort: Medium", "Effort: High"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, value := range schema.ValueLevels {
		row := []string{"Value: " + titleCase(string(value))}
		for _, effort := range schema.EffortLevels {
			cell := matrix.Cell(value, effort)
			if cell == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%s (%d)", reportLabel(cfg, cell.Priority), len(cell.Items)))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// writeRankedTable renders the ranked opportunity list, capped at the
// configured result limit.
func writeRankedTable(w io.Writer, items []schema.ScoredItem, cfg *contract.Config) error {
	fmt.Fprintln(w, "Ranked Opportunities")

	fmtFloat := createFormatter(cfg.Precision)
	limit := cfg.ResultLimit
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Role", "Department", "Value", "Effort", "Priority"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, item := range items[:limit] {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			item.Name,
			item.Department,
			fmtFloat(item.ValueScore),
			fmtFloat(item.EffortScore),
			reportLabel(cfg, item.Priority),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if limit < len(items) {
		fmt.Fprintf(w, "(showing %d of %d items)\n", limit, len(items))
	}
	fmt.Fprintln(w)
	return nil
}

// writeAdoptionTable renders the composite score and its component
// breakdown.
func writeAdoptionTable(w io.Writer, result *schema.AdoptionScoreResult, cfg *contract.Config) error {
	fmt.Fprintf(w, "AI Adoption Score: %.0f/100\n", result.Score)
	if result.Summary != "" {
		fmt.Fprintf(w, "%s\n", result.Summary)
	}

	fmtFloat := createFormatter(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Component", "Input", "Normalized", "Weighted"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	components := []struct {
		name string
		c    schema.AdoptionComponent
	}{
		{"Adoption rate", result.AdoptionRate},
		{"Time saved", result.TimeSaved},
		{"Cost efficiency", result.CostEfficiency},
		{"Performance improvement", result.PerformanceImprovement},
		{"Tool sprawl reduction", result.ToolSprawl},
	}

	var data [][]string
	for _, comp := range components {
		data = append(data, []string{
			comp.name,
			fmtFloat(comp.c.Input),
			fmtFloat(comp.c.Normalized),
			fmtFloat(comp.c.Weighted),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// writeROISection renders the ROI projection block.
func writeROISection(w io.Writer, roi *schema.ROIResult) {
	fmt.Fprintln(w, "ROI Projection")
	fmt.Fprintf(w, "  Cost savings:       %s\n", contract.FormatMoney(roi.CostSavings))
	fmt.Fprintf(w, "  Additional revenue: %s\n", contract.FormatMoney(roi.AdditionalRevenue))
	fmt.Fprintf(w, "  Annual ROI:         %s\n", contract.FormatMoney(roi.AnnualROI))
	fmt.Fprintf(w, "  AI investment:      %s\n", contract.FormatMoney(roi.AIInvestment))
	if roi.ROIRatio > 0 {
		fmt.Fprintf(w, "  ROI ratio:          %.1fx\n", roi.ROIRatio)
	}
	if roi.PaybackMonths > 0 {
		fmt.Fprintf(w, "  Payback:            %.1f months\n", roi.PaybackMonths)
	}
}

// writeReportCSV writes the ranked items as CSV, one row per item.
func writeReportCSV(w io.Writer, snap *schema.ReportSnapshot, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)
	header := []string{"rank", "id", "name", "department", "value_score", "effort_score", "value_level", "effort_level", "priority"}

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, item := range snap.RankedItems {
			row := []string{
				strconv.Itoa(i + 1),
				item.ID,
				item.Name,
				item.Department,
				fmtFloat(item.ValueScore),
				fmtFloat(item.EffortScore),
				string(item.ValueLevel),
				string(item.EffortLevel),
				string(item.Priority),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeReportParquet writes the snapshot to Parquet files via the shared
// export records.
func writeReportParquet(snap *schema.ReportSnapshot, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	reports, items := parquet.ConvertSnapshots([]schema.ReportSnapshot{*snap})
	if err := parquet.WriteReportsParquet(reports, cfg.OutputFile+".reports.parquet"); err != nil {
		return err
	}
	return parquet.WriteScoredItemsParquet(items, cfg.OutputFile+".scored_items.parquet")
}

// reportLabel picks the colored or plain priority label per config.
func reportLabel(cfg *contract.Config, p schema.Priority) string {
	if cfg.Color {
		return contract.GetColorLabel(p)
	}
	return contract.GetPlainLabel(p)
}

// titleCase uppercases the first letter of a level name for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
