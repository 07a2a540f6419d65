package intelligence

import (
	"fmt"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
)

// DeterministicCriteria builds SMART criteria advice from an analysis report
// alone. Used whenever the model path is disabled or fails.
func DeterministicCriteria(input GoalInput, report domain.AnalysisReport) *CriteriaSuggestions {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "this goal"
	}

	c := &CriteriaSuggestions{
		Specific: SpecificAdvice{
			Suggestions: []string{
				fmt.Sprintf("Define exactly what you want to achieve with %q", title),
			},
			Questions: []string{"What exactly do you want to accomplish?"},
		},
		Measurable: MeasurableAdvice{
			Suggestions: []string{
				fmt.Sprintf("Identify how you will measure progress on %q", title),
			},
			Questions: []string{"How will you measure progress?"},
		},
		Achievable: AchievableAdvice{
			Suggestions: []string{
				fmt.Sprintf("Ensure %q is realistic given your resources", title),
			},
			Questions: []string{"Is this goal realistic?"},
		},
		Relevant: RelevantAdvice{
			Suggestions: []string{
				fmt.Sprintf("Confirm %q aligns with your priorities", title),
			},
			Questions: []string{"Why is this goal important?"},
		},
		TimeBound: TimeBoundAdvice{
			Suggestions: []string{
				fmt.Sprintf("Set a clear deadline for %q", title),
			},
			Questions: []string{"When will you complete this?"},
		},
	}

	if report.Intent.Outcome != "" && report.Intent.Outcome != "goal completion" {
		c.Specific.Examples = append(c.Specific.Examples,
			fmt.Sprintf("I will %s %s", report.Intent.Action, report.Intent.Outcome))
	}

	for _, m := range report.Metrics.Metrics {
		c.Measurable.Metrics = append(c.Measurable.Metrics, MetricSuggestion{
			Name:      m.Name,
			Unit:      m.Unit,
			Target:    formatTarget(m.TargetValue),
			Frequency: "weekly",
		})
	}

	for _, con := range report.Constraints.Constraints {
		c.Achievable.Considerations = append(c.Achievable.Considerations, con.Constraint)
	}

	c.Relevant.AlignmentAreas = append(c.Relevant.AlignmentAreas, string(report.Intent.Domain))

	if report.Timeframe.EndDate != nil {
		c.TimeBound.Timeframes = append(c.TimeBound.Timeframes,
			"By "+report.Timeframe.EndDate.Format("2006-01-02"))
	} else if days, ok := report.Timeframe.Duration["days"]; ok && days > 0 {
		c.TimeBound.Timeframes = append(c.TimeBound.Timeframes,
			fmt.Sprintf("About %d days", days))
	}

	for _, m := range report.Timeframe.Milestones {
		c.TimeBound.Milestones = append(c.TimeBound.Milestones, MilestoneSuggestion{
			Title:     m,
			Timeframe: "To be scheduled",
		})
	}
	if len(c.TimeBound.Milestones) == 0 {
		c.TimeBound.Milestones = fallbackMilestones(title)
	}

	c.Normalize()
	return c
}

// fallbackMilestones is the generic start/midpoint/finish breakdown used when
// the description names no milestones of its own.
func fallbackMilestones(title string) []MilestoneSuggestion {
	return []MilestoneSuggestion{
		{
			Title:       "Start " + title,
			Description: "Begin working on the goal",
			Timeframe:   "Week 1",
		},
		{
			Title:       "Mid-point check for " + title,
			Description: "Evaluate progress and adjust if needed",
			Timeframe:   "Mid-point",
		},
		{
			Title:       "Complete " + title,
			Description: "Achieve the final goal",
			Timeframe:   "End date",
		},
	}
}

func formatTarget(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
