package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// PrintAssessments outputs an assessment listing.
func PrintAssessments(assessments []schema.Assessment, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(out io.Writer) error {
			return writeJSON(out, assessments)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(out io.Writer) error {
			header := []string{"id", "organization_id", "title", "industry", "company_stage", "status", "created_at"}
			return writeCSVWithHeader(out, header, func(csvWriter *csv.Writer) error {
				for _, a := range assessments {
					row := []string{
						strconv.FormatInt(a.ID, 10),
						strconv.FormatInt(a.OrganizationID, 10),
						a.Title,
						a.Industry,
						a.CompanyStage,
						string(a.Status),
						a.CreatedAt.Format(contract.DateTimeFormat),
					}
					if err := csvWriter.Write(row); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(out io.Writer) error {
			return writeAssessmentsTable(out, assessments)
		}, "Wrote assessments")
	}
}

func writeAssessmentsTable(out io.Writer, assessments []schema.Assessment) error {
	if len(assessments) == 0 {
		fmt.Fprintln(out, "No assessments found.")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"ID", "Org", "Title", "Industry", "Stage", "Status", "Created"})

	var data [][]string
	for _, a := range assessments {
		data = append(data, []string{
			strconv.FormatInt(a.ID, 10),
			strconv.FormatInt(a.OrganizationID, 10),
			a.Title,
			a.Industry,
			a.CompanyStage,
			string(a.Status),
			a.CreatedAt.Format(contract.DateTimeFormat),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
