package extract

import (
	"testing"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMetric(metrics []domain.MetricRecord, name string) *domain.MetricRecord {
	for i := range metrics {
		if metrics[i].Name == name {
			return &metrics[i]
		}
	}
	return nil
}

func TestIdentifyMetrics_ExplicitTargets(t *testing.T) {
	result := IdentifyMetrics("Lose 15 pounds and run 5 miles daily")

	weight := findMetric(result.Metrics, "weight_target")
	require.NotNil(t, weight, "expected a weight metric")
	assert.Equal(t, 15.0, weight.TargetValue)
	assert.Equal(t, "pounds", weight.Unit)
	assert.Equal(t, domain.MetricConfidenceHigh, weight.Confidence)

	distance := findMetric(result.Metrics, "distance_target")
	require.NotNil(t, distance, "expected a distance metric")
	assert.Equal(t, 5.0, distance.TargetValue)
}

func TestIdentifyMetrics_UnitGroupOverridesDefault(t *testing.T) {
	result := IdentifyMetrics("drop 10 kg before summer")

	weight := findMetric(result.Metrics, "weight_target")
	require.NotNil(t, weight)
	assert.Equal(t, "kg", weight.Unit)
}

func TestIdentifyMetrics_DecimalValues(t *testing.T) {
	result := IdentifyMetrics("run 3.5 miles every morning")

	distance := findMetric(result.Metrics, "distance_target")
	require.NotNil(t, distance)
	assert.Equal(t, 3.5, distance.TargetValue)
}

func TestIdentifyMetrics_ImplicitTriggers(t *testing.T) {
	tests := []struct {
		name        string
		description string
		metricName  string
		target      float64
	}{
		{"fitness", "get in shape at the gym", "workout_sessions", 12},
		{"learning", "study for the certification", "study_hours", 20},
		{"reading", "read more books", "books_read", 1},
		{"habit", "meditate every day", "consecutive_days", 30},
		{"project", "build a side project", "completion_percentage", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IdentifyMetrics(tt.description)
			m := findMetric(result.Metrics, tt.metricName)
			require.NotNil(t, m, "expected %s for %q", tt.metricName, tt.description)
			assert.Equal(t, tt.target, m.TargetValue)
			assert.Equal(t, domain.MetricConfidenceMedium, m.Confidence)
		})
	}
}

func TestIdentifyMetrics_MultipleTriggersAllFire(t *testing.T) {
	result := IdentifyMetrics("build a daily study habit")

	assert.NotNil(t, findMetric(result.Metrics, "study_hours"))
	assert.NotNil(t, findMetric(result.Metrics, "consecutive_days"))
	assert.NotNil(t, findMetric(result.Metrics, "completion_percentage"))
}

func TestIdentifyMetrics_DefaultWhenNothingFound(t *testing.T) {
	result := IdentifyMetrics("be happier")

	require.Len(t, result.Metrics, 1)
	assert.Equal(t, "progress_score", result.Metrics[0].Name)
	assert.Equal(t, 100.0, result.Metrics[0].TargetValue)
	assert.Equal(t, domain.MetricConfidenceLow, result.Metrics[0].Confidence)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestIdentifyMetrics_CapAtFive(t *testing.T) {
	result := IdentifyMetrics("lose 5 pounds, run 3 miles, save 100 dollars, read 20 pages, write 500 words, 10 times a week")

	assert.LessOrEqual(t, len(result.Metrics), 5)
}

func TestIdentifyMetrics_ConfidenceAveraging(t *testing.T) {
	// One explicit (0.9) and one implicit (0.6) metric -> 0.75.
	result := IdentifyMetrics("run 5 miles at the gym")

	require.Len(t, result.Metrics, 2)
	assert.InDelta(t, 0.75, result.Confidence, 1e-9)
}

func TestIdentifyMetrics_ConfidenceBounds(t *testing.T) {
	for _, d := range []string{"", "lose 10 pounds", "read study build daily gym 5 miles 3 hours"} {
		result := IdentifyMetrics(d)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "description %q", d)
		assert.LessOrEqual(t, result.Confidence, 1.0, "description %q", d)
	}
}

func TestIdentifyMetrics_Idempotent(t *testing.T) {
	description := "save 2000 dollars and work out 3 times per week"
	assert.Equal(t, IdentifyMetrics(description), IdentifyMetrics(description))
}
