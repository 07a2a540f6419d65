package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dgray/goalsmith/internal/domain"
)

// ParseTimeframe extracts dates, durations, milestones and timeline
// flexibility from a goal description. The reference time is injected so
// relative expressions ("next week", "in 3 days") resolve deterministically
// in tests. It never fails: internal panics degrade to a 30-day flexible
// fallback.
func ParseTimeframe(description string, now time.Time) (result domain.TimeframeResult) {
	defer func() {
		if recover() != nil {
			result = fallbackTimeframe()
		}
	}()

	lower := strings.ToLower(description)

	phrases := extractTimePhrases(lower)
	startDate, endDate := parseDates(lower, now)
	duration := extractDuration(lower)
	milestones := extractMilestones(lower)
	flexibility := determineFlexibility(lower)

	return domain.TimeframeResult{
		StartDate:        startDate,
		EndDate:          endDate,
		Duration:         duration,
		Milestones:       milestones,
		Flexibility:      flexibility,
		ExtractedPhrases: phrases,
		Confidence:       timeframeConfidence(phrases, startDate, endDate),
	}
}

func fallbackTimeframe() domain.TimeframeResult {
	return domain.TimeframeResult{
		Duration:         map[string]int{"days": 30},
		Milestones:       []string{},
		Flexibility:      domain.FlexibilityFlexible,
		ExtractedPhrases: []string{},
		Confidence:       0.2,
	}
}

func extractTimePhrases(lower string) []string {
	phrases := []string{}
	for _, p := range timePhrasePatterns {
		for _, m := range p.re.FindAllStringSubmatch(lower, -1) {
			phrase := strings.TrimSpace(m[p.group])
			if phrase != "" {
				phrases = append(phrases, phrase)
			}
		}
	}
	return phrases
}

// parseDates looks for explicit date literals first, then relative
// expressions. When several date-like substrings occur, the last successfully
// parsed one wins; this overwrite behavior is deliberate and covered by
// tests. The start date defaults to now whenever an end date was found
// without one.
func parseDates(lower string, now time.Time) (*time.Time, *time.Time) {
	var startDate, endDate *time.Time

	for _, m := range slashDatePattern.FindAllStringSubmatch(lower, -1) {
		if d, ok := buildNumericDate(m[1], m[2], m[3]); ok {
			endDate = &d
		}
	}
	for _, m := range dashDatePattern.FindAllStringSubmatch(lower, -1) {
		if d, ok := buildNumericDate(m[1], m[2], m[3]); ok {
			endDate = &d
		}
	}
	for _, m := range monthDatePattern.FindAllStringSubmatch(lower, -1) {
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		day, _ := strconv.Atoi(m[2])
		if d, ok := buildDate(year, monthNumbers[m[1]], day); ok {
			endDate = &d
		}
	}

	if endDate == nil {
		endDate = parseRelativeDate(lower, now)
	}

	if endDate != nil && startDate == nil {
		startDate = &now
	}

	return startDate, endDate
}

// buildNumericDate parses MM/DD/YYYY or MM-DD-YYYY components. Two-digit
// years below 50 map to 20xx, the rest to 19xx.
func buildNumericDate(monthStr, dayStr, yearStr string) (time.Time, bool) {
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	return buildDate(year, month, day)
}

// buildDate constructs a date and rejects impossible component combinations
// (time.Date would silently normalize them instead).
func buildDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// relativeDateRules resolve phrase -> date in declaration order.
var relativeDateRules = []struct {
	re      *regexp.Regexp
	resolve func(now time.Time) time.Time
}{
	{regexp.MustCompile(`\btoday\b`), func(now time.Time) time.Time { return now }},
	{regexp.MustCompile(`\btomorrow\b`), func(now time.Time) time.Time { return now.AddDate(0, 0, 1) }},
	{regexp.MustCompile(`\bnext week\b`), func(now time.Time) time.Time { return now.AddDate(0, 0, 7) }},
	{regexp.MustCompile(`\bthis week\b`), func(now time.Time) time.Time {
		// Days remaining in a Monday-based week.
		weekday := (int(now.Weekday()) + 6) % 7
		return now.AddDate(0, 0, 7-weekday)
	}},
	{regexp.MustCompile(`\bnext month\b`), func(now time.Time) time.Time { return now.AddDate(0, 0, 30) }},
	{regexp.MustCompile(`\bthis month\b`), func(now time.Time) time.Time {
		return time.Date(now.Year(), now.Month(), 28, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	}},
	{regexp.MustCompile(`\bnext year\b`), func(now time.Time) time.Time { return now.AddDate(1, 0, 0) }},
	{regexp.MustCompile(`\bthis year\b`), func(now time.Time) time.Time {
		return time.Date(now.Year(), time.December, 31, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	}},
}

var inUnitsRules = []struct {
	re      *regexp.Regexp
	resolve func(now time.Time, n int) time.Time
}{
	{regexp.MustCompile(`\bin\s+(\d+)\s+days?\b`), func(now time.Time, n int) time.Time { return now.AddDate(0, 0, n) }},
	{regexp.MustCompile(`\bin\s+(\d+)\s+weeks?\b`), func(now time.Time, n int) time.Time { return now.AddDate(0, 0, n*7) }},
	{regexp.MustCompile(`\bin\s+(\d+)\s+months?\b`), func(now time.Time, n int) time.Time { return now.AddDate(0, 0, n*30) }},
}

func parseRelativeDate(lower string, now time.Time) *time.Time {
	for _, rule := range relativeDateRules {
		if rule.re.MatchString(lower) {
			d := rule.resolve(now)
			return &d
		}
	}
	for _, rule := range inUnitsRules {
		if m := rule.re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			d := rule.resolve(now, n)
			return &d
		}
	}
	return nil
}

// extractDuration scans for per-unit counts and normalizes them to a single
// whole-day total: days + weeks*7 + months*30 + years*365 + hours/24,
// truncated. An empty map means no duration was stated.
func extractDuration(lower string) map[string]int {
	units := map[string]int{}
	for _, p := range durationPatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				units[p.unit] = n
			}
		}
	}
	if len(units) == 0 {
		return map[string]int{}
	}

	totalDays := float64(units["days"]) +
		float64(units["weeks"])*7 +
		float64(units["months"])*30 +
		float64(units["years"])*365 +
		float64(units["hours"])/24

	if int(totalDays) > 0 {
		return map[string]int{"days": int(totalDays)}
	}
	return map[string]int{}
}

func extractMilestones(lower string) []string {
	milestones := []string{}
	for _, re := range milestonePatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if ms := strings.TrimSpace(m[1]); ms != "" {
				milestones = append(milestones, ms)
			}
		}
	}
	if len(milestones) > maxMilestones {
		milestones = milestones[:maxMilestones]
	}
	return milestones
}

func determineFlexibility(lower string) domain.Flexibility {
	switch {
	case containsAny(lower, veryFlexibleWords):
		return domain.FlexibilityVeryFlexible
	case containsAny(lower, flexibleWords):
		return domain.FlexibilityFlexible
	case containsAny(lower, fixedWords):
		return domain.FlexibilityFixed
	}
	return domain.FlexibilityFlexible
}

func timeframeConfidence(phrases []string, startDate, endDate *time.Time) float64 {
	confidence := 0.3
	if len(phrases) > 0 {
		confidence += 0.2
	}
	if len(phrases) > 1 {
		confidence += 0.1
	}
	if startDate != nil {
		confidence += 0.2
	}
	if endDate != nil {
		confidence += 0.2
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
