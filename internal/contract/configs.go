package contract

import (
	"fmt"
	"time"

	"github.com/oakline/prism/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 1
	MaxPrecision       = 6
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the engine and CLI. This
// struct is the "final, validated" config; raw values from file, env and
// flags land in ConfigRawInput first.
type Config struct {
	StoreBackend schema.StoreBackend
	StoreConnStr string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	Color      bool

	ResultLimit int

	// Assessment-fetch retry policy. Applies to the fetch only, never to
	// the full pipeline.
	FetchAttempts   int
	FetchRetryDelay time.Duration

	// Reference scales for adoption-score normalization of absolute inputs.
	TimeSavedReferenceHours float64
	CostEfficiencyReference float64
}

// Clone returns a copy of the config safe for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	StoreBackendStr string  `mapstructure:"store-backend"`
	StoreConnStr    string  `mapstructure:"store-connect"`
	OutputStr       string  `mapstructure:"output"`
	OutputFile      string  `mapstructure:"output-file"`
	Precision       int     `mapstructure:"precision"`
	Width           int     `mapstructure:"width"`
	ColorStr        string  `mapstructure:"color"`
	ResultLimit     int     `mapstructure:"limit"`
	FetchAttempts   int     `mapstructure:"fetch-attempts"`
	FetchRetryMS    int     `mapstructure:"fetch-retry-ms"`
	TimeSavedRef    float64 `mapstructure:"ref-time-saved-hours"`
	CostEffRef      float64 `mapstructure:"ref-cost-efficiency"`
}

// ProcessRawInput validates the raw input and fills in the final config.
func ProcessRawInput(cfg *Config, input *ConfigRawInput) error {
	backend := schema.StoreBackend(input.StoreBackendStr)
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql, or none", input.StoreBackendStr)
	}
	cfg.StoreBackend = backend
	cfg.StoreConnStr = input.StoreConnStr
	if backend == schema.SQLiteBackend && cfg.StoreConnStr == "" {
		cfg.StoreConnStr = GetStoreDBFilePath()
	}
	if (backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend) && cfg.StoreConnStr == "" {
		return fmt.Errorf("store-connect is required for the %s backend", backend)
	}

	output := schema.OutputMode(input.OutputStr)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json, or parquet", input.OutputStr)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d", MaxPrecision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative")
	}
	cfg.Width = input.Width
	cfg.Color = parseBoolish(input.ColorStr, true)

	if input.ResultLimit < 1 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	if input.FetchAttempts < 1 {
		return fmt.Errorf("fetch-attempts must be at least 1")
	}
	cfg.FetchAttempts = input.FetchAttempts

	if input.FetchRetryMS < 0 {
		return fmt.Errorf("fetch-retry-ms cannot be negative")
	}
	cfg.FetchRetryDelay = time.Duration(input.FetchRetryMS) * time.Millisecond

	if input.TimeSavedRef <= 0 {
		return fmt.Errorf("ref-time-saved-hours must be positive")
	}
	cfg.TimeSavedReferenceHours = input.TimeSavedRef

	if input.CostEffRef <= 0 {
		return fmt.Errorf("ref-cost-efficiency must be positive")
	}
	cfg.CostEfficiencyReference = input.CostEffRef

	return nil
}

// parseBoolish interprets the yes/no/true/false/1/0 forms accepted on the
// --color flag.
func parseBoolish(s string, fallback bool) bool {
	switch s {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}

// ValidateWeights checks an organization weight vector against the
// sum-to-1.0 invariant with the write-time tolerance.
func ValidateWeights(w schema.OrganizationScoreWeights) error {
	for _, v := range []float64{w.AdoptionRate, w.TimeSaved, w.CostEfficiency, w.PerformanceImprovement, w.ToolSprawlReduction} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: component %.3f outside [0,1]", ErrInvalidWeights, v)
		}
	}
	sum := w.Sum()
	if sum < 1.0-schema.WeightSumTolerance || sum > 1.0+schema.WeightSumTolerance {
		return fmt.Errorf("%w: got %.3f", ErrInvalidWeights, sum)
	}
	return nil
}
