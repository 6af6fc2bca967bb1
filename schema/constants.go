package schema

// Custom string types for type safety.
type (
	// Level is an ordinal bucket a scalar score classifies to.
	Level string

	// Priority is the categorical recommendation for a matrix cell.
	Priority string

	// AssessmentStatus tracks an assessment through its lifecycle.
	AssessmentStatus string

	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for persistence.
	StoreBackend string
)

// All classification levels.
const (
	HighLevel   Level = "high"
	MediumLevel Level = "medium"
	LowLevel    Level = "low"
)

// All priority tiers.
const (
	HighPriority   Priority = "high"
	MediumPriority Priority = "medium"
	LowPriority    Priority = "low"
	NotRecommended Priority = "not_recommended"
)

// All assessment statuses.
const (
	DraftStatus     AssessmentStatus = "draft"
	SubmittedStatus AssessmentStatus = "submitted"
	CompletedStatus AssessmentStatus = "completed"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     StoreBackend = "sqlite" // default
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
	NoneBackend       StoreBackend = "none"
)

// ValueLevels lists the matrix rows in display order (highest value first).
var ValueLevels = []Level{HighLevel, MediumLevel, LowLevel}

// EffortLevels lists the matrix columns in display order (lowest effort first).
var EffortLevels = []Level{LowLevel, MediumLevel, HighLevel}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
