package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
)

// ExtractConstraints categorizes limiting statements into time, resource,
// skill, external and personal constraints, and assigns each a severity. It
// never fails: internal panics degrade to an empty low-confidence result.
func ExtractConstraints(description string) (result domain.ConstraintsResult) {
	defer func() {
		if r := recover(); r != nil {
			result = fallbackConstraints(fmt.Sprintf("%v", r))
		}
	}()

	lower := strings.ToLower(description)

	categories := map[domain.ConstraintCategory][]string{}
	var constraints []domain.ConstraintRecord
	categoriesHit := 0

	for _, entry := range constraintCategoryPatterns {
		found := matchCategory(lower, entry.patterns)
		categories[entry.category] = found
		if len(found) > 0 {
			categoriesHit++
		}
		for _, c := range found {
			constraints = append(constraints, domain.ConstraintRecord{
				Constraint: c,
				Category:   entry.category,
				Severity:   assessSeverity(c),
			})
		}
	}

	return domain.ConstraintsResult{
		Constraints: constraints,
		Categories:  categories,
		TotalCount:  len(constraints),
		Confidence:  constraintConfidence(len(constraints)),
		Reasoning:   fmt.Sprintf("Identified %d constraints across %d categories", len(constraints), categoriesHit),
	}
}

func fallbackConstraints(reason string) domain.ConstraintsResult {
	return domain.ConstraintsResult{
		Constraints: []domain.ConstraintRecord{},
		Categories:  map[domain.ConstraintCategory][]string{},
		TotalCount:  0,
		Confidence:  0.2,
		Reasoning:   "Error extracting constraints: " + reason,
	}
}

// matchCategory runs one category's pattern list and returns trimmed clause
// matches. Patterns with several capture groups have their non-empty groups
// joined with a space.
func matchCategory(lower string, patterns []*regexp.Regexp) []string {
	found := []string{}
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			var parts []string
			for _, g := range m[1:] {
				if g != "" {
					parts = append(parts, g)
				}
			}
			clause := strings.TrimSpace(strings.Join(parts, " "))
			if clause != "" {
				found = append(found, clause)
			}
		}
	}
	return found
}

// assessSeverity scans the constraint text for severity vocabulary:
// high-severity words win over medium, everything else is low.
func assessSeverity(constraint string) domain.Severity {
	lower := strings.ToLower(constraint)
	switch {
	case containsAny(lower, highSeverityWords):
		return domain.SeverityHigh
	case containsAny(lower, mediumSeverityWords):
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// constraintConfidence grows with the number of constraints found:
// 0.3 when none, otherwise 0.5 plus 0.1 per constraint capped at +0.4.
func constraintConfidence(count int) float64 {
	if count == 0 {
		return 0.3
	}
	bonus := float64(count) * 0.1
	if bonus > 0.4 {
		bonus = 0.4
	}
	confidence := 0.5 + bonus
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
