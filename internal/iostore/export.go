package iostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/oakline/prism/internal/parquet"
)

// ExecuteReportExport writes all stored report snapshots to a pair of
// Parquet files next to outputFile: one with per-report rows and one with
// per-item rows.
func ExecuteReportExport(ctx context.Context, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.ReportsImpl()
	if store == nil {
		return errors.New("export requires a configured store backend")
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalReports == 0 {
		return errors.New("no report snapshots found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total report snapshots: %d\n", status.TotalReports)

	snaps, err := store.GetAllReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve report snapshots: %w", err)
	}

	reports, items := parquet.ConvertSnapshots(snaps)

	reportsFile := outputFile + ".reports.parquet"
	if err := parquet.WriteReportsParquet(reports, reportsFile); err != nil {
		return fmt.Errorf("failed to write report records: %w", err)
	}
	fmt.Printf("Exported %d report records to: %s\n", len(reports), reportsFile)

	itemsFile := outputFile + ".scored_items.parquet"
	if err := parquet.WriteScoredItemsParquet(items, itemsFile); err != nil {
		return fmt.Errorf("failed to write scored item records: %w", err)
	}
	fmt.Printf("Exported %d scored item records to: %s\n", len(items), itemsFile)

	return nil
}
