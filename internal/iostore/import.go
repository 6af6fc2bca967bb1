package iostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/internal/outwriter"
	"github.com/oakline/prism/schema"
)

// assessmentImportFile is the JSON document accepted by the import command:
// one assessment plus its optional per-question responses.
type assessmentImportFile struct {
	Assessment schema.Assessment           `json:"assessment"`
	Responses  []schema.AssessmentResponse `json:"responses,omitempty"`
}

// ExecuteAssessmentImport reads an assessment document from path and stores
// it. An assessment id of zero lets the store allocate one.
func ExecuteAssessmentImport(ctx context.Context, path string) error {
	store := Manager.AssessmentsImpl()
	if store == nil {
		return errors.New("import requires a configured store backend")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file %s: %w", path, err)
	}

	var doc assessmentImportFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse import file %s: %w", path, err)
	}

	id, err := store.ImportAssessment(ctx, &doc.Assessment)
	if err != nil {
		return fmt.Errorf("failed to import assessment: %w", err)
	}

	if len(doc.Responses) > 0 {
		if err := store.ImportResponses(ctx, id, doc.Responses); err != nil {
			return fmt.Errorf("failed to import responses for assessment %d: %w", id, err)
		}
	}

	fmt.Printf("Imported assessment %d with %d response(s).\n", id, len(doc.Responses))
	return nil
}

// ExecuteAssessmentsList prints all stored assessments, newest first.
func ExecuteAssessmentsList(ctx context.Context, cfg *contract.Config) error {
	store := Manager.AssessmentsImpl()
	if store == nil {
		return errors.New("listing requires a configured store backend")
	}

	assessments, err := store.ListAssessments(ctx)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteAssessments(assessments, cfg)
}

// PrintStoreStatus prints store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Report Snapshots: %d\n", status.TotalReports)
	if status.TotalReports > 0 {
		fmt.Printf("Last Snapshot ID: %s\n", status.LastReportID)
		fmt.Printf("Last Snapshot: %s\n", status.LastReportTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("Table Sizes:")
	tables := make([]string, 0, len(status.TableSizes))
	for table := range status.TableSizes {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		fmt.Printf("  %s: %d rows\n", table, status.TableSizes[table])
	}
}
