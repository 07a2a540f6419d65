// Package validate scores SMART goal records against a fixed rule set and
// produces improvement suggestions. It is pure computation: no I/O, no
// model calls.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
)

// Result holds the outcome of a full goal validation run. Issues are grouped
// by check family because each family carries a different score weight.
type Result struct {
	IsValid            bool
	Score              int
	CompletenessIssues []string
	SMARTIssues        []string
	TimelineIssues     []string
	MilestoneIssues    []string
	Strengths          []string
}

// Score weights per issue family. Missing fields hurt the most.
const (
	completenessPenalty = 15
	smartPenalty        = 10
	timelinePenalty     = 8
	milestonePenalty    = 5

	passingScore = 70
)

var (
	measurablePattern = regexp.MustCompile(`\d+|percent|%|measure|track|count`)
	timeBoundPattern  = regexp.MustCompile(`\d{4}|\d{1,2}/\d{1,2}|\d{1,2}-\d{1,2}|week|month|year`)
	numberPattern     = regexp.MustCompile(`\d+`)
)

// Validate runs every check family over the goal and computes a 0-100 score.
// A goal passes at 70 or above.
func Validate(g domain.Goal) Result {
	r := Result{}

	r.CompletenessIssues, r.Strengths = checkCompleteness(g, r.Strengths)
	r.SMARTIssues, r.Strengths = checkSMARTCriteria(g, r.Strengths)
	r.TimelineIssues, r.Strengths = checkTimeline(g, r.Strengths)
	r.MilestoneIssues, r.Strengths = checkMilestones(g, r.Strengths)

	score := 100
	score -= len(r.CompletenessIssues) * completenessPenalty
	score -= len(r.SMARTIssues) * smartPenalty
	score -= len(r.TimelineIssues) * timelinePenalty
	score -= len(r.MilestoneIssues) * milestonePenalty
	if score < 0 {
		score = 0
	}

	r.Score = score
	r.IsValid = score >= passingScore
	return r
}

// checkCompleteness verifies that every SMART field plus title and
// description carries real content.
func checkCompleteness(g domain.Goal, strengths []string) ([]string, []string) {
	fields := []struct {
		name  string
		value string
	}{
		{"title", g.Title},
		{"description", g.Description},
		{"specific", g.Specific},
		{"measurable", g.Measurable},
		{"achievable", g.Achievable},
		{"relevant", g.Relevant},
		{"timeBound", g.TimeBound},
	}

	var issues []string
	for _, f := range fields {
		if len(strings.TrimSpace(f.value)) < 3 {
			issues = append(issues, fmt.Sprintf("Missing or incomplete %s", f.name))
		} else {
			strengths = append(strengths, fmt.Sprintf("Complete %s provided", f.name))
		}
	}
	return issues, strengths
}

func checkSMARTCriteria(g domain.Goal, strengths []string) ([]string, []string) {
	var issues []string

	if len(g.Specific) < 10 {
		issues = append(issues, "Specific criterion needs more detail")
	} else if containsAnyWord(g.Specific, "exactly", "precisely", "specifically") {
		strengths = append(strengths, "Specific criterion is well-defined")
	}

	if !measurablePattern.MatchString(strings.ToLower(g.Measurable)) {
		issues = append(issues, "Measurable criterion lacks quantifiable metrics")
	} else {
		strengths = append(strengths, "Measurable criterion includes metrics")
	}

	if len(g.Achievable) < 15 {
		issues = append(issues, "Achievable criterion needs more justification")
	} else if containsAnyWord(g.Achievable, "realistic", "possible", "feasible") {
		strengths = append(strengths, "Achievable criterion is well-justified")
	}

	if len(g.Relevant) < 15 {
		issues = append(issues, "Relevant criterion needs more explanation")
	} else if containsAnyWord(g.Relevant, "important", "priority", "align", "value") {
		strengths = append(strengths, "Relevant criterion shows clear importance")
	}

	if !timeBoundPattern.MatchString(strings.ToLower(g.TimeBound)) {
		issues = append(issues, "Time-bound criterion lacks specific dates or timeframes")
	} else {
		strengths = append(strengths, "Time-bound criterion includes specific timeline")
	}

	return issues, strengths
}

func checkTimeline(g domain.Goal, strengths []string) ([]string, []string) {
	var issues []string

	switch {
	case containsAnyWord(g.TimeBound, "tomorrow", "next week", "few days"):
		issues = append(issues, "Timeline may be too aggressive")
	case containsAnyWord(g.TimeBound, "someday", "eventually", "one day"):
		issues = append(issues, "Timeline is too vague")
	default:
		strengths = append(strengths, "Timeline appears realistic")
	}

	for i, m := range g.Milestones {
		if m.DueDate == nil {
			issues = append(issues, fmt.Sprintf("Milestone %d missing due date", i+1))
		}
	}

	return issues, strengths
}

func checkMilestones(g domain.Goal, strengths []string) ([]string, []string) {
	var issues []string

	if len(g.Milestones) == 0 {
		issues = append(issues, "No milestones defined to track progress")
		return issues, strengths
	}

	strengths = append(strengths, fmt.Sprintf("%d milestones defined", len(g.Milestones)))
	for i, m := range g.Milestones {
		if m.Title == "" {
			issues = append(issues, fmt.Sprintf("Milestone %d missing title", i+1))
		}
		if m.Description == "" {
			issues = append(issues, fmt.Sprintf("Milestone %d missing description", i+1))
		}
	}

	return issues, strengths
}

// SuggestImprovements produces actionable edit suggestions for a goal,
// independent of the pass/fail score.
func SuggestImprovements(g domain.Goal) []string {
	var suggestions []string

	if len(g.Title) < 5 {
		suggestions = append(suggestions, "Create a more descriptive title (at least 5 characters)")
	} else if len(g.Title) > 100 {
		suggestions = append(suggestions, "Shorten the title to be more concise (under 100 characters)")
	}

	if len(g.Description) < 20 {
		suggestions = append(suggestions, "Add more detail to the description (at least 20 characters)")
	}

	if !strings.Contains(strings.ToLower(g.Specific), "what") {
		suggestions = append(suggestions, "In the Specific section, clearly state what you want to accomplish")
	}
	if !numberPattern.MatchString(g.Measurable) {
		suggestions = append(suggestions, "Add specific numbers or percentages to make the goal measurable")
	}
	if !strings.Contains(strings.ToLower(g.Achievable), "resource") {
		suggestions = append(suggestions, "Consider what resources you'll need to achieve this goal")
	}
	if !strings.Contains(strings.ToLower(g.Relevant), "why") {
		suggestions = append(suggestions, "Explain why this goal is important to you in the Relevant section")
	}
	lowerTimeBound := strings.ToLower(g.TimeBound)
	if !strings.Contains(lowerTimeBound, "by") && !strings.Contains(lowerTimeBound, "deadline") {
		suggestions = append(suggestions, "Set a clear deadline using 'by [date]' in the Time-bound section")
	}

	switch len(g.Milestones) {
	case 0:
		suggestions = append(suggestions, "Break down your goal into 3-5 milestones with specific dates")
	case 1:
		suggestions = append(suggestions, "Add more milestones to better track progress")
	default:
		if len(g.Milestones) > 10 {
			suggestions = append(suggestions, "Consider reducing the number of milestones to focus on key checkpoints")
		}
	}

	if !strings.Contains(lowerTimeBound, "buffer") && !strings.Contains(lowerTimeBound, "extra") {
		suggestions = append(suggestions, "Consider adding buffer time for unexpected delays")
	}

	return suggestions
}

func containsAnyWord(s string, words ...string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
