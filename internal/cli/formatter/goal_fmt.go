package formatter

import (
	"fmt"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/intelligence"
	"github.com/dgray/goalsmith/internal/validate"
)

// FormatGoalList renders goals as an aligned table.
func FormatGoalList(goals []*domain.Goal) string {
	headers := []string{"ID", "TITLE", "DOMAIN", "STATUS", "CREATED"}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			TruncID(g.ID),
			g.Title,
			DomainBadge(g.Domain),
			StatusPill(g.Status),
			HumanDate(g.CreatedAt),
		})
	}
	return RenderTable(headers, rows)
}

// FormatGoal renders a single goal with its SMART fields and milestones.
func FormatGoal(g *domain.Goal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold(g.Title), TruncID(g.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StatusPill(g.Status), DomainBadge(g.Domain)))
	if g.Description != "" {
		b.WriteString(Dim(g.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(Header("SMART Criteria"))
	b.WriteString("\n")
	b.WriteString(smartRow("Specific", g.Specific))
	b.WriteString(smartRow("Measurable", g.Measurable))
	b.WriteString(smartRow("Achievable", g.Achievable))
	b.WriteString(smartRow("Relevant", g.Relevant))
	b.WriteString(smartRow("Time-bound", g.TimeBound))

	if len(g.Milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Milestones"))
		b.WriteString("\n")
		for _, m := range g.Milestones {
			due := Dim("unscheduled")
			if m.DueDate != nil {
				due = m.DueDate.Format("2006-01-02")
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleBlue.Render("◆"), m.Title, Dim(due)))
			if m.Description != "" {
				b.WriteString("    " + Dim(m.Description) + "\n")
			}
		}
	}

	b.WriteString(Dim(fmt.Sprintf("\nCreated %s, updated %s\n",
		HumanDate(g.CreatedAt), HumanTimestamp(g.UpdatedAt))))
	return b.String()
}

func smartRow(label, value string) string {
	if value == "" {
		value = Dim("not set")
	}
	return fmt.Sprintf("  %-12s %s\n", label, value)
}

// FormatValidation renders a validation result with its score bar and issue
// lists grouped by check family.
func FormatValidation(result validate.Result) string {
	var b strings.Builder

	b.WriteString(Header("Validation"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-8s %s\n", "Score", ScoreBar(result.Score, 70, barWidth)))
	verdict := StyleGreen.Render("✔ PASSING")
	if !result.IsValid {
		verdict = StyleRed.Render("✖ NEEDS WORK")
	}
	b.WriteString("  " + verdict + "\n")

	writeIssues := func(label string, issues []string) {
		if len(issues) == 0 {
			return
		}
		b.WriteString("\n  " + Bold(label) + "\n")
		for _, issue := range issues {
			b.WriteString(fmt.Sprintf("    %s %s\n", StyleRed.Render("✖"), issue))
		}
	}
	writeIssues("Completeness", result.CompletenessIssues)
	writeIssues("SMART quality", result.SMARTIssues)
	writeIssues("Timeline", result.TimelineIssues)
	writeIssues("Milestones", result.MilestoneIssues)

	if len(result.Strengths) > 0 {
		b.WriteString("\n  " + Bold("Strengths") + "\n")
		for _, s := range result.Strengths {
			b.WriteString(fmt.Sprintf("    %s %s\n", StyleGreen.Render("✔"), s))
		}
	}
	return b.String()
}

// FormatCriteria renders SMART criteria advice, one section per criterion.
func FormatCriteria(c *intelligence.CriteriaSuggestions) string {
	var b strings.Builder
	writeAdvice(&b, "Specific", c.Specific.Suggestions, c.Specific.Questions, c.Specific.Examples)
	writeAdvice(&b, "Measurable", c.Measurable.Suggestions, c.Measurable.Questions, c.Measurable.Examples)
	for _, m := range c.Measurable.Metrics {
		b.WriteString(fmt.Sprintf("  %s %s: %s %s %s\n",
			StyleGreen.Render("▸"), Bold(m.Name), m.Target, m.Unit, Dim(m.Frequency)))
	}
	writeAdvice(&b, "Achievable", c.Achievable.Suggestions, c.Achievable.Questions, c.Achievable.Considerations)
	writeAdvice(&b, "Relevant", c.Relevant.Suggestions, c.Relevant.Questions, c.Relevant.AlignmentAreas)
	writeAdvice(&b, "Time-bound", c.TimeBound.Suggestions, c.TimeBound.Questions, c.TimeBound.Timeframes)
	for _, m := range c.TimeBound.Milestones {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleBlue.Render("◆"), m.Title, Dim(m.Timeframe)))
	}
	return b.String()
}

func writeAdvice(b *strings.Builder, label string, suggestions, questions, extras []string) {
	b.WriteString(Header(label))
	b.WriteString("\n")
	for _, s := range suggestions {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("→"), s))
	}
	for _, q := range questions {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("?"), q))
	}
	for _, e := range extras {
		b.WriteString("  " + Dim(e) + "\n")
	}
}

// FormatPlan renders the full goal-creation output: the goal, its validation,
// criteria advice, and next steps.
func FormatPlan(plan *intelligence.GoalPlan) string {
	var b strings.Builder

	b.WriteString(FormatGoal(&plan.Goal))
	b.WriteString("\n")
	b.WriteString(FormatValidation(plan.Validation))
	if plan.Criteria != nil {
		b.WriteString("\n")
		b.WriteString(FormatCriteria(plan.Criteria))
	}
	if len(plan.NextSteps) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Next Steps"))
		b.WriteString("\n")
		for i, step := range plan.NextSteps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}
	return b.String()
}

// FormatRefinement renders a refinement result with its recommendations.
func FormatRefinement(result *intelligence.RefineResult) string {
	var b strings.Builder

	source := Dim("(local rules)")
	if result.Source == intelligence.SourceModel {
		source = Dim("(model assisted)")
	}
	b.WriteString(Header("Refinement"))
	b.WriteString("\n" + "  " + source + "\n")
	for _, r := range result.Recommendations {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("→"), r))
	}
	if len(result.Recommendations) == 0 {
		b.WriteString("  " + Dim("No recommendations, the goal looks solid") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatGoal(&result.Goal))
	return b.String()
}
