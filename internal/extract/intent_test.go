package extract

import (
	"testing"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent_FitnessDomain(t *testing.T) {
	result := ClassifyIntent("I want to run a marathon by October and lose 20 pounds")

	assert.Equal(t, domain.DomainFitness, result.Domain)
	assert.Equal(t, "run", result.Action)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestClassifyIntent_DomainKeywordScoring(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        domain.GoalDomain
	}{
		{"learning", "I want to learn Spanish and take a language course", domain.DomainLearning},
		{"finance", "Save money and pay off my debt this year", domain.DomainFinance},
		{"career", "Get promoted to senior developer at work", domain.DomainCareer},
		{"habits", "Build a daily meditation routine with more discipline", domain.DomainHabits},
		{"no keywords defaults to projects", "hello world", domain.DomainProjects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyIntent(tt.description)
			assert.Equal(t, tt.want, result.Domain)
		})
	}
}

func TestClassifyIntent_ActionPriorityOrder(t *testing.T) {
	// "learn" belongs to an earlier verb family than "build", so it wins
	// even though "build" appears first in the text.
	result := ClassifyIntent("build a plan to learn algebra")
	assert.Equal(t, "learn", result.Action)
}

func TestClassifyIntent_ActionFallbackVerbLikeWord(t *testing.T) {
	// No verb-family match; the first >=4 char word ending in ing/ed/er
	// that is not a filler word becomes the action.
	result := ClassifyIntent("I want swimming lessons")
	assert.Equal(t, "swimming", result.Action)
}

func TestClassifyIntent_ActionDefault(t *testing.T) {
	result := ClassifyIntent("a b c")
	assert.Equal(t, "achieve", result.Action)
}

func TestClassifyIntent_OutcomeStopsAtTimeBoundary(t *testing.T) {
	result := ClassifyIntent("I want to lose 10 pounds by December")
	assert.Equal(t, "lose 10 pounds", result.Outcome)
}

func TestClassifyIntent_ContextClauses(t *testing.T) {
	result := ClassifyIntent("I want to exercise more because my doctor recommended it")
	assert.NotEmpty(t, result.Context)
	assert.Contains(t, result.Context[0], "my doctor recommended it")
}

func TestClassifyIntent_Urgency(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        domain.Urgency
	}{
		{"urgent keyword", "I urgently need to fix my resume", domain.UrgencyHigh},
		{"deadline keyword", "Finish the report before the deadline", domain.UrgencyHigh},
		{"low keyword", "Someday I would like to visit Japan", domain.UrgencyLow},
		{"date cue high", "Finish the report today", domain.UrgencyHigh},
		{"date cue low", "Finish the report this year", domain.UrgencyLow},
		{"default medium", "Finish the report", domain.UrgencyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyIntent(tt.description)
			assert.Equal(t, tt.want, result.Urgency, tt.description)
		})
	}
}

func TestClassifyIntent_VagueDescriptionScoresLower(t *testing.T) {
	vague := ClassifyIntent("do stuff")
	rich := ClassifyIntent("I want to lose 10 pounds by 12/31/2026 so that I feel healthier")

	assert.Greater(t, rich.Confidence, vague.Confidence)
}

func TestClassifyIntent_ConfidenceBounds(t *testing.T) {
	descriptions := []string{
		"",
		"do stuff",
		"whatever",
		"I want to run a marathon by October and lose 20 pounds because I need a challenge",
		"learn build create finish save exercise study",
	}

	for _, d := range descriptions {
		result := ClassifyIntent(d)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "description %q", d)
		assert.LessOrEqual(t, result.Confidence, 1.0, "description %q", d)
	}
}

func TestClassifyIntent_Idempotent(t *testing.T) {
	description := "I want to save 5000 dollars in 10 months but I have limited income"
	first := ClassifyIntent(description)
	second := ClassifyIntent(description)

	assert.Equal(t, first, second)
}
