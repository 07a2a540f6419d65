package domain

import "time"

// IntentResult is the structured intent extracted from a goal description.
type IntentResult struct {
	Domain     GoalDomain `json:"domain"`
	Action     string     `json:"action"`
	Outcome    string     `json:"outcome"`
	Context    []string   `json:"context"`
	Urgency    Urgency    `json:"urgency"`
	Confidence float64    `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
}

// TimeframeResult holds dates, duration and milestones found in a description.
// Duration, when present, is normalized to whole days under the "days" key.
type TimeframeResult struct {
	StartDate        *time.Time     `json:"startDate"`
	EndDate          *time.Time     `json:"endDate"`
	Duration         map[string]int `json:"duration"`
	Milestones       []string       `json:"milestones"`
	Flexibility      Flexibility    `json:"flexibility"`
	ExtractedPhrases []string       `json:"extractedPhrases"`
	Confidence       float64        `json:"confidence"`
}

// MetricRecord is a single measurable target harvested from a description.
type MetricRecord struct {
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	TargetValue  float64          `json:"targetValue"`
	CurrentValue float64          `json:"currentValue"`
	Confidence   MetricConfidence `json:"confidence"`
	Reasoning    string           `json:"reasoning"`
}

type MetricsResult struct {
	Metrics    []MetricRecord `json:"metrics"`
	Confidence float64        `json:"confidence"`
	Reasoning  string         `json:"reasoning"`
}

// ConstraintRecord is one limiting statement with its category and severity.
type ConstraintRecord struct {
	Constraint string             `json:"constraint"`
	Category   ConstraintCategory `json:"category"`
	Severity   Severity           `json:"severity"`
}

// ConstraintsResult groups extracted constraints. TotalCount always equals
// len(Constraints).
type ConstraintsResult struct {
	Constraints []ConstraintRecord              `json:"constraints"`
	Categories  map[ConstraintCategory][]string `json:"categories"`
	TotalCount  int                             `json:"total_count"`
	Confidence  float64                         `json:"confidence"`
	Reasoning   string                          `json:"reasoning"`
}

// AnalysisReport merges the four extractor outputs for one description.
// OverallConfidence is the unweighted mean of the four sub-confidences.
type AnalysisReport struct {
	Description       string            `json:"original_description"`
	Intent            IntentResult      `json:"intent"`
	Timeframe         TimeframeResult   `json:"timeframe"`
	Metrics           MetricsResult     `json:"metrics"`
	Constraints       ConstraintsResult `json:"constraints"`
	OverallConfidence float64           `json:"overall_confidence"`
	Summary           string            `json:"summary"`
	Recommendations   []string          `json:"recommendations"`
	AnalyzedAt        time.Time         `json:"analyzed_at"`
}

// ConfidenceBand maps a numeric confidence onto a qualitative band:
// >0.7 high, >0.4 medium, else low.
func ConfidenceBand(confidence float64) string {
	switch {
	case confidence > 0.7:
		return "high"
	case confidence > 0.4:
		return "medium"
	default:
		return "low"
	}
}
