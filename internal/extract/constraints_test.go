package extract

import (
	"testing"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConstraints_TimeConstraint(t *testing.T) {
	result := ExtractConstraints("I can train only 2 hours per week")

	require.NotEmpty(t, result.Constraints)
	assert.Equal(t, domain.ConstraintTime, result.Constraints[0].Category)
	assert.Contains(t, result.Constraints[0].Constraint, "2 hours per week")
}

func TestExtractConstraints_Categories(t *testing.T) {
	tests := []struct {
		name        string
		description string
		category    domain.ConstraintCategory
	}{
		{"resource", "I have no budget for a personal trainer", domain.ConstraintResource},
		{"skill", "I am new to programming and databases", domain.ConstraintSkill},
		{"external", "this depends on my manager approving the transfer", domain.ConstraintExternal},
		{"personal", "I am afraid of public speaking", domain.ConstraintPersonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractConstraints(tt.description)
			require.NotEmpty(t, result.Constraints, tt.description)

			found := false
			for _, c := range result.Constraints {
				if c.Category == tt.category {
					found = true
				}
			}
			assert.True(t, found, "expected a %s constraint", tt.category)
		})
	}
}

func TestExtractConstraints_Severity(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        domain.Severity
	}{
		{"high severity word", "I am new to this and it seems impossible to schedule", domain.SeverityHigh},
		{"medium severity word", "I am new to this and my time is limited", domain.SeverityMedium},
		{"low by default", "I am new to woodworking", domain.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractConstraints(tt.description)
			require.NotEmpty(t, result.Constraints)
			assert.Equal(t, tt.want, result.Constraints[0].Severity)
		})
	}
}

func TestExtractConstraints_TotalCountInvariant(t *testing.T) {
	descriptions := []string{
		"",
		"simple goal with no obstacles",
		"I am new to running, have no budget, and work prevents long sessions",
		"only 3 hours per week, afraid of failure, waiting for approval from the board",
	}

	for _, d := range descriptions {
		result := ExtractConstraints(d)
		assert.Equal(t, len(result.Constraints), result.TotalCount, "description %q", d)
	}
}

func TestExtractConstraints_CategoriesMapMirrorsRecords(t *testing.T) {
	result := ExtractConstraints("I am new to running and have no budget")

	total := 0
	for _, list := range result.Categories {
		total += len(list)
	}
	assert.Equal(t, result.TotalCount, total)
}

func TestExtractConstraints_ConfidenceScoring(t *testing.T) {
	none := ExtractConstraints("a clean simple goal")
	assert.InDelta(t, 0.3, none.Confidence, 1e-9)

	one := ExtractConstraints("I am new to juggling")
	require.Equal(t, 1, one.TotalCount)
	assert.InDelta(t, 0.6, one.Confidence, 1e-9)
}

func TestExtractConstraints_ConfidenceBounds(t *testing.T) {
	for _, d := range []string{
		"",
		"no budget, no experience, busy all week, afraid of heights, waiting for permits, deadline friday, limited to evenings only",
	} {
		result := ExtractConstraints(d)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
	}
}

func TestExtractConstraints_Idempotent(t *testing.T) {
	description := "I am new to swimming and can only train 2 hours per week"
	assert.Equal(t, ExtractConstraints(description), ExtractConstraints(description))
}
