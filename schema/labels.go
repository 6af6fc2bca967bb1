package schema

import "fmt"

// ScoreDescription returns the report's qualitative reading of a value
// score. Band edges follow the published report format.
func ScoreDescription(score float64) string {
	switch {
	case score >= 4.5:
		return "Exceptional candidate for AI transformation"
	case score >= 4.0:
		return "Strong candidate for AI transformation"
	case score >= 3.5:
		return "Good candidate for AI transformation"
	case score >= 3.0:
		return "Moderate candidate for AI transformation"
	case score >= 2.5:
		return "Consider for future AI transformation"
	case score >= 2.0:
		return "Limited potential for AI transformation"
	default:
		return "Not recommended for AI transformation at this time"
	}
}

// AdoptionScoreSummary describes an adoption score in the context of the
// organization's industry and stage.
func AdoptionScoreSummary(score float64, industry, companyStage string) string {
	if industry == "" {
		industry = FallbackIndustry
	}
	if companyStage == "" {
		companyStage = FallbackStage
	}

	var band string
	switch {
	case score >= 80:
		band = "excellent AI adoption potential; strong readiness for advanced AI initiatives"
	case score >= 60:
		band = "good AI adoption potential; ready for targeted AI initiatives with proper planning"
	case score >= 40:
		band = "moderate AI adoption potential; focus on foundational AI capabilities first"
	default:
		band = "cautious AI adoption potential; start with small pilots and address readiness gaps"
	}

	return fmt.Sprintf("Score %.0f/100 for a %s organization in %s: %s.",
		score, companyStage, industry, band)
}
