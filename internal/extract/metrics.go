package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
)

// IdentifyMetrics harvests explicit numeric targets and infers implicit
// metrics from domain cues. It never fails: internal panics degrade to a
// single low-confidence completion metric.
func IdentifyMetrics(description string) (result domain.MetricsResult) {
	defer func() {
		if r := recover(); r != nil {
			result = fallbackMetrics(fmt.Sprintf("%v", r))
		}
	}()

	lower := strings.ToLower(description)

	metrics := explicitMetrics(lower)
	metrics = append(metrics, implicitMetrics(lower)...)
	if len(metrics) == 0 {
		metrics = defaultMetrics()
	}
	if len(metrics) > maxMetrics {
		metrics = metrics[:maxMetrics]
	}

	return domain.MetricsResult{
		Metrics:    metrics,
		Confidence: metricsConfidence(metrics),
		Reasoning:  fmt.Sprintf("Identified %d measurable metrics from the description", len(metrics)),
	}
}

func fallbackMetrics(reason string) domain.MetricsResult {
	return domain.MetricsResult{
		Metrics: []domain.MetricRecord{{
			Name:        "completion_status",
			Unit:        "percent",
			TargetValue: 100,
			Confidence:  domain.MetricConfidenceLow,
			Reasoning:   "Fallback metric due to error: " + reason,
		}},
		Confidence: 0.2,
		Reasoning:  "Used fallback metrics due to processing error",
	}
}

// explicitMetrics emits one high-confidence record per numeric pattern match.
// A matched unit group overrides the pattern's default unit.
func explicitMetrics(lower string) []domain.MetricRecord {
	var metrics []domain.MetricRecord
	for _, p := range metricPatterns {
		for _, m := range p.re.FindAllStringSubmatch(lower, -1) {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			unit := p.unit
			if len(m) > 2 && m[2] != "" {
				unit = m[2]
			}
			metrics = append(metrics, domain.MetricRecord{
				Name:        p.metricType + "_target",
				Unit:        unit,
				TargetValue: value,
				Confidence:  domain.MetricConfidenceHigh,
				Reasoning:   fmt.Sprintf("Found explicit numeric value: %v %s", value, unit),
			})
		}
	}
	return metrics
}

// implicitMetrics fires every trigger whose keywords appear, each
// contributing a fixed-shape medium-confidence record.
func implicitMetrics(lower string) []domain.MetricRecord {
	var metrics []domain.MetricRecord
	for _, trigger := range implicitMetricTriggers {
		if containsAny(lower, trigger.keywords) {
			metrics = append(metrics, domain.MetricRecord{
				Name:        trigger.name,
				Unit:        trigger.unit,
				TargetValue: trigger.target,
				Confidence:  domain.MetricConfidenceMedium,
				Reasoning:   trigger.reasoning,
			})
		}
	}
	return metrics
}

func defaultMetrics() []domain.MetricRecord {
	return []domain.MetricRecord{{
		Name:        "progress_score",
		Unit:        "points",
		TargetValue: 100,
		Confidence:  domain.MetricConfidenceLow,
		Reasoning:   "Generic progress metric for goals without explicit measurements",
	}}
}

// metricsConfidence averages per-metric confidence bands using fixed values
// (high 0.9, medium 0.6, low 0.3), clamped to 1.0.
func metricsConfidence(metrics []domain.MetricRecord) float64 {
	if len(metrics) == 0 {
		return 0.0
	}
	total := 0.0
	for _, m := range metrics {
		switch m.Confidence {
		case domain.MetricConfidenceHigh:
			total += 0.9
		case domain.MetricConfidenceMedium:
			total += 0.6
		default:
			total += 0.3
		}
	}
	avg := total / float64(len(metrics))
	if avg > 1.0 {
		avg = 1.0
	}
	return avg
}
