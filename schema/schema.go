// Package schema has the data model, enums and default constants shared by
// all parts of prism.
package schema

import (
	"encoding/json"
	"time"
)

// Assessment is a submitted questionnaire for one organization. StepData is
// immutable once submitted; regeneration of a report never mutates it.
type Assessment struct {
	ID             int64            `json:"id"`
	OrganizationID int64            `json:"organization_id"`
	Title          string           `json:"title"`
	Industry       string           `json:"industry"`
	CompanyStage   string           `json:"company_stage"`
	Status         AssessmentStatus `json:"status"`
	StepData       *StepData        `json:"step_data,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// StepData is the raw questionnaire payload, one section per wizard step.
type StepData struct {
	Roles          *RolesStep      `json:"roles,omitempty"`
	PainPoints     *PainPointsStep `json:"pain_points,omitempty"`
	WorkVolume     *WorkVolumeStep `json:"work_volume,omitempty"`
	TechStack      *TechStackStep  `json:"tech_stack,omitempty"`
	AdoptionInputs *AdoptionInputs `json:"adoption_inputs,omitempty"`
	ROIInputs      *ROIInputs      `json:"roi_inputs,omitempty"`
}

// RoleRef identifies one selected role with the display metadata captured at
// submission time.
type RoleRef struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

// RolesStep holds the roles the user selected and their preferred ordering.
// PrioritizedRoleIDs may be empty, in which case selection order is used.
type RolesStep struct {
	SelectedRoles      []RoleRef `json:"selected_roles"`
	PrioritizedRoleIDs []int64   `json:"prioritized_role_ids,omitempty"`
}

// PainPointRating captures per-role severity, frequency and impact on a 1-5
// scale. A zero field means the question was not answered; the engine
// substitutes DefaultRating.
type PainPointRating struct {
	Severity  float64 `json:"severity"`
	Frequency float64 `json:"frequency"`
	Impact    float64 `json:"impact"`
}

// PainPointsStep maps role id (decimal string key, matching the wizard's
// JSON encoding) to its pain-point ratings.
type PainPointsStep struct {
	RoleSpecificPainPoints map[string]PainPointRating `json:"role_specific_pain_points"`
}

// WorkVolume describes how much of a role's week is taken by the rated work.
type WorkVolume struct {
	TaskHoursPerWeek float64 `json:"task_hours_per_week"`
	VolumeBand       string  `json:"volume_band"`
}

// WorkVolumeStep maps role id to its work-volume descriptor.
type WorkVolumeStep struct {
	RoleWorkVolume map[string]WorkVolume `json:"role_work_volume"`
}

// TechStackStep holds the global data readiness answers. DataQuality is a
// direct 1-5 rating; when zero, the engine derives one from the number of
// available data sources listed in DataAvailability.
type TechStackStep struct {
	DataQuality      float64  `json:"data_quality"`
	DataAvailability []string `json:"data_availability,omitempty"`
}

// AdoptionInputs are the raw adoption-score metrics. Pointers distinguish
// "not answered" from an explicit zero.
type AdoptionInputs struct {
	AdoptionRateForecast      *float64 `json:"adoption_rate_forecast,omitempty"`
	TimeSavedHoursPerUser     *float64 `json:"time_saved_hours_per_user,omitempty"`
	AffectedUserCount         *float64 `json:"affected_user_count,omitempty"`
	CostEfficiencyGainsAmount *float64 `json:"cost_efficiency_gains_amount,omitempty"`
	PerformanceImprovementPct *float64 `json:"performance_improvement_pct,omitempty"`
	ToolSprawlScore           *float64 `json:"tool_sprawl_score,omitempty"`
}

// ROIInputs are the raw currency inputs for the ROI projection. Absent
// values are treated as zero.
type ROIInputs struct {
	CostSavings       float64 `json:"cost_savings"`
	AdditionalRevenue float64 `json:"additional_revenue"`
	AIInvestment      float64 `json:"ai_investment"`
}

// AssessmentResponse is one stored answer, used to backfill StepData when an
// assessment was answered question-by-question instead of step-by-step.
// QuestionIdentifier is a dotted path like "tech_stack.data_quality".
type AssessmentResponse struct {
	AssessmentID       int64           `json:"assessment_id"`
	QuestionIdentifier string          `json:"question_identifier"`
	Numeric            *float64        `json:"numeric,omitempty"`
	Text               *string         `json:"text,omitempty"`
	Boolean            *bool           `json:"boolean,omitempty"`
	JSON               json.RawMessage `json:"json,omitempty"`
}

// ScoredItem is one role after scoring and classification. A computation
// always produces a fresh set; items are never mutated in place.
type ScoredItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	ValueScore  float64  `json:"value_score"`
	EffortScore float64  `json:"effort_score"`
	ValueLevel  Level    `json:"value_level"`
	EffortLevel Level    `json:"effort_level"`
	Priority    Priority `json:"priority"`
}

// HeatmapCell is one cell of the 3x3 value/effort matrix. Priority is a
// function of the cell coordinates, not of the items placed in it.
type HeatmapCell struct {
	Priority Priority     `json:"priority"`
	Items    []ScoredItem `json:"items"`
}

// HeatmapMatrix is the full 3x3 grid keyed by (value level, effort level).
type HeatmapMatrix struct {
	Matrix map[Level]map[Level]*HeatmapCell `json:"matrix"`
}

// Cell returns the cell at the given coordinates.
func (h *HeatmapMatrix) Cell(value, effort Level) *HeatmapCell {
	return h.Matrix[value][effort]
}

// ItemCount returns the total number of items across all cells.
func (h *HeatmapMatrix) ItemCount() int {
	var n int
	for _, row := range h.Matrix {
		for _, cell := range row {
			n += len(cell.Items)
		}
	}
	return n
}

// OrganizationScoreWeights is the per-organization weight vector for the
// adoption score. The five weights must sum to 1.0 within WeightSumTolerance.
type OrganizationScoreWeights struct {
	OrganizationID         int64     `json:"organization_id"`
	AdoptionRate           float64   `json:"adoption_rate"`
	TimeSaved              float64   `json:"time_saved"`
	CostEfficiency         float64   `json:"cost_efficiency"`
	PerformanceImprovement float64   `json:"performance_improvement"`
	ToolSprawlReduction    float64   `json:"tool_sprawl_reduction"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Sum returns the total of the five component weights.
func (w OrganizationScoreWeights) Sum() float64 {
	return w.AdoptionRate + w.TimeSaved + w.CostEfficiency +
		w.PerformanceImprovement + w.ToolSprawlReduction
}

// AdoptionComponent is one normalized component of the adoption score.
// Input is the raw metric, Normalized its 0-100 equivalent, Weighted its
// contribution to the composite.
type AdoptionComponent struct {
	Input      float64 `json:"input"`
	Normalized float64 `json:"normalized"`
	Weighted   float64 `json:"weighted"`
}

// AdoptionScoreResult is the composite 0-100 adoption score plus the
// component values it was built from. ToolSprawl.Input stays on the metric's
// native [-2,2] scale; its Normalized value is the rescaled 0-100 figure
// that feeds the weighted sum.
type AdoptionScoreResult struct {
	Score                  float64           `json:"score"`
	AdoptionRate           AdoptionComponent `json:"adoption_rate"`
	TimeSaved              AdoptionComponent `json:"time_saved"`
	CostEfficiency         AdoptionComponent `json:"cost_efficiency"`
	PerformanceImprovement AdoptionComponent `json:"performance_improvement"`
	ToolSprawl             AdoptionComponent `json:"tool_sprawl"`
	Summary                string            `json:"summary,omitempty"`
}

// ROIResult is the annual ROI projection.
type ROIResult struct {
	AnnualROI         float64 `json:"annual_roi"`
	CostSavings       float64 `json:"cost_savings"`
	AdditionalRevenue float64 `json:"additional_revenue"`
	AIInvestment      float64 `json:"ai_investment"`
	ROIRatio          float64 `json:"roi_ratio"`
	PaybackMonths     float64 `json:"payback_months"`
}

// ReportSnapshot is the persisted output of one orchestration run. Snapshots
// are append-only: regeneration creates a new one and never rewrites an old
// one.
type ReportSnapshot struct {
	ID               string              `json:"id"`
	AssessmentID     int64               `json:"assessment_id"`
	ExecutiveSummary string              `json:"executive_summary"`
	Heatmap          HeatmapMatrix       `json:"heatmap"`
	RankedItems      []ScoredItem        `json:"ranked_items"`
	AdoptionScore    AdoptionScoreResult `json:"adoption_score"`
	ROI              ROIResult           `json:"roi"`
	Commentary       string              `json:"commentary"` // consultant-authored, empty on generation
	GeneratedAt      time.Time           `json:"generated_at"`
}
