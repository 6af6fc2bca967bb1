package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// weightRows is the display order of weight components.
func weightRows(w *schema.OrganizationScoreWeights) []struct {
	Name   string
	Weight float64
} {
	return []struct {
		Name   string
		Weight float64
	}{
		{"Adoption rate", w.AdoptionRate},
		{"Time saved", w.TimeSaved},
		{"Cost efficiency", w.CostEfficiency},
		{"Performance improvement", w.PerformanceImprovement},
		{"Tool sprawl reduction", w.ToolSprawlReduction},
	}
}

// PrintWeights outputs an organization weight vector.
func PrintWeights(w *schema.OrganizationScoreWeights, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(out io.Writer) error {
			return writeJSON(out, w)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(out io.Writer) error {
			header := []string{"component", "weight"}
			return writeCSVWithHeader(out, header, func(csvWriter *csv.Writer) error {
				for _, row := range weightRows(w) {
					if err := csvWriter.Write([]string{row.Name, fmt.Sprintf("%.3f", row.Weight)}); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(out io.Writer) error {
			return writeWeightsTable(out, w)
		}, "Wrote weights")
	}
}

// writeWeightsTable renders the weight vector as a table with its sum.
func writeWeightsTable(out io.Writer, w *schema.OrganizationScoreWeights) error {
	fmt.Fprintf(out, "Score weights for organization %d", w.OrganizationID)
	if !w.UpdatedAt.IsZero() {
		fmt.Fprintf(out, " (updated %s)", w.UpdatedAt.Format(contract.DateTimeFormat))
	}
	fmt.Fprintln(out)

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Component", "Weight"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range weightRows(w) {
		data = append(data, []string{row.Name, fmt.Sprintf("%.3f", row.Weight)})
	}
	data = append(data, []string{"Total", fmt.Sprintf("%.3f", w.Sum())})

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
