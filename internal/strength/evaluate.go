package strength

import (
	"github.com/jonathan/passkit/internal/types"
)

// Evaluate checks password against every rule and classifies the result.
// An empty password yields LabelNone with no checklist and no recommendations.
func Evaluate(password string) types.StrengthReport {
	report := types.StrengthReport{
		TotalChecks:     TotalChecks,
		Checklist:       []types.Check{},
		Label:           types.LabelNone,
		Recommendations: []string{},
	}
	if password == "" {
		return report
	}

	for _, rule := range rules {
		passed := rule.Test(password)
		report.Checklist = append(report.Checklist, types.Check{
			Rule:        rule.Name,
			Description: rule.Description,
			Passed:      passed,
		})
		if passed {
			report.PassedChecks++
		} else {
			report.Recommendations = append(report.Recommendations, rule.Recommendation)
		}
	}

	report.Label = ClassifyChecks(report.PassedChecks)
	report.Percent = 100 * float64(report.PassedChecks) / float64(TotalChecks)
	return report
}

// ClassifyChecks maps a checker score to its label.
func ClassifyChecks(passed int) types.Label {
	switch {
	case passed <= 2:
		return types.LabelWeak
	case passed == 3:
		return types.LabelMedium
	case passed == 4:
		return types.LabelGood
	default:
		return types.LabelExcellent
	}
}
