package extract

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgray/goalsmith/internal/domain"
)

// Analyzer runs the four extractors over one description and merges their
// outputs into a single report. The extractors are pure functions of the
// input string and the static pattern tables, so one Analyzer may be shared
// across goroutines.
type Analyzer struct {
	clock func() time.Time
}

// NewAnalyzer creates an Analyzer using the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{clock: time.Now}
}

// NewAnalyzerWithClock creates an Analyzer with an injected clock, for
// deterministic relative-date resolution in tests.
func NewAnalyzerWithClock(clock func() time.Time) *Analyzer {
	return &Analyzer{clock: clock}
}

// Analyze produces the full analysis report for a description. The four
// extractors have no ordering dependency and run concurrently; each one
// degrades to its own documented fallback rather than failing, so the report
// is always well-formed.
func (a *Analyzer) Analyze(description string) (report domain.AnalysisReport) {
	now := a.clock()

	defer func() {
		if r := recover(); r != nil {
			report = a.fallbackReport(description, now, fmt.Sprintf("%v", r))
		}
	}()

	var (
		intent      domain.IntentResult
		timeframe   domain.TimeframeResult
		metrics     domain.MetricsResult
		constraints domain.ConstraintsResult
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); intent = ClassifyIntent(description) }()
	go func() { defer wg.Done(); timeframe = ParseTimeframe(description, now) }()
	go func() { defer wg.Done(); metrics = IdentifyMetrics(description) }()
	go func() { defer wg.Done(); constraints = ExtractConstraints(description) }()
	wg.Wait()

	overall := (intent.Confidence + timeframe.Confidence + metrics.Confidence + constraints.Confidence) / 4

	report = domain.AnalysisReport{
		Description:       description,
		Intent:            intent,
		Timeframe:         timeframe,
		Metrics:           metrics,
		Constraints:       constraints,
		OverallConfidence: overall,
		AnalyzedAt:        now,
	}
	report.Summary = buildSummary(report)
	report.Recommendations = buildRecommendations(report)
	return report
}

// buildSummary renders a one-paragraph summary: classification, timeframe
// highlight, metric count and qualitative confidence band.
func buildSummary(report domain.AnalysisReport) string {
	parts := []string{
		fmt.Sprintf("Goal classified as %s domain with action '%s'", report.Intent.Domain, report.Intent.Action),
	}

	if report.Timeframe.EndDate != nil {
		parts = append(parts, fmt.Sprintf("Target completion by %s", report.Timeframe.EndDate.Format("2006-01-02")))
	} else if days, ok := report.Timeframe.Duration["days"]; ok {
		parts = append(parts, fmt.Sprintf("Estimated duration: %d days", days))
	}

	if n := len(report.Metrics.Metrics); n > 0 {
		parts = append(parts, fmt.Sprintf("Identified %d measurable metrics", n))
	}

	parts = append(parts, fmt.Sprintf("Overall analysis confidence: %s", domain.ConfidenceBand(report.OverallConfidence)))

	return strings.Join(parts, ". ") + "."
}

// buildRecommendations suggests up to five improvements: one per
// low-confidence extractor, a missing-constraints nudge, and domain-specific
// advice for fitness, learning and career goals.
func buildRecommendations(report domain.AnalysisReport) []string {
	var recs []string

	if report.Intent.Confidence < 0.6 {
		recs = append(recs, "Consider providing more specific details about what you want to achieve")
	}
	if report.Timeframe.Confidence < 0.6 {
		recs = append(recs, "Add specific deadlines or timeframes to make the goal more time-bound")
	}
	if report.Metrics.Confidence < 0.6 {
		recs = append(recs, "Include measurable outcomes or success criteria")
	}
	if report.Constraints.TotalCount == 0 {
		recs = append(recs, "Consider potential obstacles or constraints that might affect your goal")
	}

	switch report.Intent.Domain {
	case domain.DomainFitness:
		recs = append(recs, "Consider tracking specific metrics like workout frequency or performance improvements")
	case domain.DomainLearning:
		recs = append(recs, "Break down the learning goal into specific skills or knowledge areas")
	case domain.DomainCareer:
		recs = append(recs, "Define specific career milestones or skill developments")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// fallbackReport mirrors each extractor's own fallback shape so a total
// failure still yields a well-formed report.
func (a *Analyzer) fallbackReport(description string, now time.Time, reason string) domain.AnalysisReport {
	return domain.AnalysisReport{
		Description: description,
		Intent: domain.IntentResult{
			Domain:     domain.DomainProjects,
			Action:     "achieve",
			Outcome:    "goal completion",
			Context:    []string{},
			Urgency:    domain.UrgencyMedium,
			Confidence: 0.2,
			Reasoning:  "Fallback analysis due to error: " + reason,
		},
		Timeframe:         fallbackTimeframe(),
		Metrics:           fallbackMetrics(reason),
		Constraints:       fallbackConstraints(reason),
		OverallConfidence: 0.2,
		AnalyzedAt:        now,
		Summary:           "Analysis failed due to technical error. Manual review recommended.",
		Recommendations: []string{
			"Retry analysis with simplified description",
			"Consider manual goal creation",
		},
	}
}
