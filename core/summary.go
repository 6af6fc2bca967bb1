package core

import (
	"fmt"
	"strings"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// BuildExecutiveSummary renders the deterministic executive summary for a
// report snapshot. Identical inputs produce identical text.
func BuildExecutiveSummary(a *schema.Assessment, ranked []schema.ScoredItem, adoption schema.AdoptionScoreResult, roi schema.ROIResult) string {
	var b strings.Builder

	title := a.Title
	if title == "" {
		title = fmt.Sprintf("Assessment %d", a.ID)
	}
	fmt.Fprintf(&b, "%s evaluated %d role(s) for automation potential.", title, len(ranked))

	if len(ranked) > 0 {
		top := ranked
		if len(top) > 3 {
			top = top[:3]
		}
		b.WriteString(" Leading opportunities: ")
		for i, item := range top {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "%s (%s, value %.1f/5 at effort %.1f/5, %s)",
				item.Name, contract.GetPlainLabel(item.Priority),
				item.ValueScore, item.EffortScore,
				strings.ToLower(schema.ScoreDescription(item.ValueScore)))
		}
		b.WriteString(".")
	}

	fmt.Fprintf(&b, " AI adoption score: %.0f/100.", adoption.Score)

	if roi.AnnualROI > 0 {
		fmt.Fprintf(&b, " Projected annual return of %s", contract.FormatMoney(roi.AnnualROI))
		if roi.AIInvestment > 0 {
			fmt.Fprintf(&b, " on a %s investment (%.1fx)", contract.FormatMoney(roi.AIInvestment), roi.ROIRatio)
		}
		b.WriteString(".")
	}

	return b.String()
}
