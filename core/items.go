package core

import (
	"strconv"

	"github.com/oakline/prism/schema"
)

// BuildScoredItems scores every selected role in the assessment. Roles are
// processed in prioritized order when a ranking exists, selection order
// otherwise; ids in the ranking that were never selected are skipped.
func BuildScoredItems(step *schema.StepData) []schema.ScoredItem {
	if step == nil || step.Roles == nil {
		return nil
	}

	roleByID := make(map[int64]schema.RoleRef, len(step.Roles.SelectedRoles))
	for _, r := range step.Roles.SelectedRoles {
		roleByID[r.ID] = r
	}

	order := step.Roles.PrioritizedRoleIDs
	if len(order) == 0 {
		order = make([]int64, 0, len(step.Roles.SelectedRoles))
		for _, r := range step.Roles.SelectedRoles {
			order = append(order, r.ID)
		}
	}

	var painPoints map[string]schema.PainPointRating
	if step.PainPoints != nil {
		painPoints = step.PainPoints.RoleSpecificPainPoints
	}

	dataQuality := DeriveDataQuality(step.TechStack)
	effortScore := ComputeEffortScore(dataQuality)
	effortLevel := ClassifyEffort(effortScore)

	items := make([]schema.ScoredItem, 0, len(order))
	for _, roleID := range order {
		role, ok := roleByID[roleID]
		if !ok {
			continue
		}

		key := strconv.FormatInt(roleID, 10)
		valueScore := ComputeValueScore(painPoints[key])
		valueLevel := ClassifyValue(valueScore)

		priority, err := ResolvePriority(valueLevel, effortLevel)
		if err != nil {
			// Unreachable with a total table; documented invariant.
			continue
		}

		items = append(items, schema.ScoredItem{
			ID:          key,
			Name:        role.Title,
			Department:  role.Department,
			ValueScore:  valueScore,
			EffortScore: effortScore,
			ValueLevel:  valueLevel,
			EffortLevel: effortLevel,
			Priority:    priority,
		})
	}
	return items
}
