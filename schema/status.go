package schema

import "time"

// StoreStatus is diagnostic information about the report store, for the
// store status command.
type StoreStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalReports   int64            `json:"total_reports"`
	LastReportID   string           `json:"last_report_id,omitempty"`
	LastReportTime time.Time        `json:"last_report_time,omitzero"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}
