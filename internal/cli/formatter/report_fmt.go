package formatter

import (
	"fmt"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
)

const barWidth = 20

// FormatReport renders a full analysis report with one section per extractor.
func FormatReport(report domain.AnalysisReport) string {
	var b strings.Builder

	b.WriteString(Header("Goal Analysis"))
	b.WriteString("\n")
	b.WriteString(Dim(report.Description))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Overall confidence"), ConfidenceBar(report.OverallConfidence, barWidth)))
	if report.Summary != "" {
		b.WriteString(report.Summary)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(FormatIntent(report.Intent))
	b.WriteString("\n")
	b.WriteString(FormatTimeframe(report.Timeframe))
	b.WriteString("\n")
	b.WriteString(FormatMetrics(report.Metrics))
	b.WriteString("\n")
	b.WriteString(FormatConstraints(report.Constraints))

	if len(report.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n")
		for _, r := range report.Recommendations {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("→"), r))
		}
	}

	return b.String()
}

// FormatIntent renders the intent section of a report.
func FormatIntent(intent domain.IntentResult) string {
	var b strings.Builder
	b.WriteString(Header("Intent"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Domain", DomainBadge(intent.Domain)))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Action", intent.Action))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Outcome", intent.Outcome))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Urgency", UrgencyBadge(intent.Urgency)))
	if len(intent.Context) > 0 {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", "Context", strings.Join(intent.Context, "; ")))
	}
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Confidence", ConfidenceBar(intent.Confidence, barWidth)))
	if intent.Reasoning != "" {
		b.WriteString("  " + Dim(intent.Reasoning) + "\n")
	}
	return b.String()
}

// FormatTimeframe renders the timeframe section of a report.
func FormatTimeframe(tf domain.TimeframeResult) string {
	var b strings.Builder
	b.WriteString(Header("Timeframe"))
	b.WriteString("\n")
	if tf.StartDate != nil {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", "Start", tf.StartDate.Format("2006-01-02")))
	}
	if tf.EndDate != nil {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", "End", tf.EndDate.Format("2006-01-02")))
	}
	if days, ok := tf.Duration["days"]; ok {
		b.WriteString(fmt.Sprintf("  %-12s %d days\n", "Duration", days))
	}
	if tf.StartDate == nil && tf.EndDate == nil && len(tf.Duration) == 0 {
		b.WriteString("  " + Dim("No dates or duration found") + "\n")
	}
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Flexibility", string(tf.Flexibility)))
	for _, m := range tf.Milestones {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("◆"), m))
	}
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Confidence", ConfidenceBar(tf.Confidence, barWidth)))
	return b.String()
}

// FormatMetrics renders the metrics section of a report.
func FormatMetrics(metrics domain.MetricsResult) string {
	var b strings.Builder
	b.WriteString(Header("Metrics"))
	b.WriteString("\n")
	if len(metrics.Metrics) == 0 {
		b.WriteString("  " + Dim("No measurable targets found") + "\n")
	}
	for _, m := range metrics.Metrics {
		target := formatMetricValue(m.TargetValue)
		b.WriteString(fmt.Sprintf("  %s %s: %s %s %s\n",
			StyleGreen.Render("▸"), Bold(m.Name), target, m.Unit,
			Dim("("+string(m.Confidence)+")")))
	}
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Confidence", ConfidenceBar(metrics.Confidence, barWidth)))
	return b.String()
}

// FormatConstraints renders the constraints section of a report.
func FormatConstraints(constraints domain.ConstraintsResult) string {
	var b strings.Builder
	b.WriteString(Header("Constraints"))
	b.WriteString("\n")
	if constraints.TotalCount == 0 {
		b.WriteString("  " + Dim("No constraints found") + "\n")
	}
	for _, c := range constraints.Constraints {
		sev := SeverityColor(c.Severity).Render(strings.ToUpper(string(c.Severity)))
		b.WriteString(fmt.Sprintf("  %s [%s] %s %s\n",
			StyleYellow.Render("▪"), sev, c.Constraint,
			Dim("("+string(c.Category)+")")))
	}
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Confidence", ConfidenceBar(constraints.Confidence, barWidth)))
	return b.String()
}

func formatMetricValue(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
