package extract

import (
	"fmt"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
)

// ClassifyIntent maps a free-text goal description to a domain, primary
// action, outcome phrase, context list, urgency level and confidence score.
// It never fails: any internal panic degrades to a fixed low-confidence
// fallback so callers always receive a usable result.
func ClassifyIntent(description string) (result domain.IntentResult) {
	defer func() {
		if r := recover(); r != nil {
			result = fallbackIntent(fmt.Sprintf("%v", r))
		}
	}()

	lower := strings.ToLower(description)

	d := classifyDomain(lower)
	action := extractAction(description, lower)
	outcome := extractOutcome(description, lower)
	context := extractContext(lower)
	urgency := determineUrgency(lower)
	confidence := intentConfidence(description, lower, d, action, outcome)

	return domain.IntentResult{
		Domain:     d,
		Action:     action,
		Outcome:    outcome,
		Context:    context,
		Urgency:    urgency,
		Confidence: confidence,
		Reasoning:  fmt.Sprintf("Classified as %s based on keywords. Action: %s, Outcome: %s", d, action, outcome),
	}
}

func fallbackIntent(reason string) domain.IntentResult {
	return domain.IntentResult{
		Domain:     domain.DomainProjects,
		Action:     "achieve",
		Outcome:    "goal completion",
		Context:    []string{},
		Urgency:    domain.UrgencyMedium,
		Confidence: 0.3,
		Reasoning:  "Fallback classification due to error: " + reason,
	}
}

// classifyDomain scores each domain by keyword hits and returns the highest.
// Ties break toward the earlier table entry; zero evidence means projects.
func classifyDomain(lower string) domain.GoalDomain {
	best := domain.DomainProjects
	bestScore := 0
	for _, entry := range domainKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.Domain
			bestScore = score
		}
	}
	return best
}

// extractAction tries the verb-family patterns in priority order, then falls
// back to the first verb-like word (>=4 chars ending in ing/ed/er) that is
// not a filler word.
func extractAction(description, lower string) string {
	for _, re := range actionPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return m[1]
		}
	}

	for _, word := range strings.Fields(description) {
		w := strings.ToLower(word)
		if actionFillerWords[w] {
			continue
		}
		if len(word) > 3 && (strings.HasSuffix(w, "ing") || strings.HasSuffix(w, "ed") || strings.HasSuffix(w, "er")) {
			return w
		}
	}

	return "achieve"
}

// extractOutcome returns the first matched outcome clause, stopping at a
// period, end of string, or a by/in/within boundary. Falls back to the first
// eight words of the description.
func extractOutcome(description, lower string) string {
	for _, re := range outcomePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	words := strings.Fields(description)
	if len(words) > 3 {
		n := len(words)
		if n > 8 {
			n = 8
		}
		return strings.Join(words[:n], " ")
	}
	return description
}

// extractContext collects motivation clauses and constraint-introducing
// clauses, trimmed and filtered for non-empty.
func extractContext(lower string) []string {
	context := []string{}
	for _, re := range motivationPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if c := strings.TrimSpace(m[1]); c != "" {
				context = append(context, c)
			}
		}
	}
	for _, re := range conditionPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if c := strings.TrimSpace(m[1]); c != "" {
				context = append(context, c)
			}
		}
	}
	return context
}

func determineUrgency(lower string) domain.Urgency {
	switch {
	case containsAny(lower, highUrgencyWords):
		return domain.UrgencyHigh
	case containsAny(lower, mediumUrgencyWords):
		return domain.UrgencyMedium
	case containsAny(lower, lowUrgencyWords):
		return domain.UrgencyLow
	}

	// No urgency vocabulary; fall back to date cues.
	switch {
	case highUrgencyDates.MatchString(lower):
		return domain.UrgencyHigh
	case mediumUrgencyDates.MatchString(lower):
		return domain.UrgencyMedium
	case lowUrgencyDates.MatchString(lower):
		return domain.UrgencyLow
	}

	return domain.UrgencyMedium
}

// intentConfidence is a fixed scoring heuristic, not a calibrated
// probability: longer, specific descriptions score higher, vague ones lower.
func intentConfidence(description, lower string, d domain.GoalDomain, action, outcome string) float64 {
	confidence := 0.5

	wordCount := len(strings.Fields(description))
	if wordCount >= 5 {
		confidence += 0.1
	}
	if wordCount >= 10 {
		confidence += 0.1
	}
	if action != "achieve" {
		confidence += 0.1
	}
	if len(outcome) > 10 {
		confidence += 0.1
	}
	if d != domain.DomainProjects {
		confidence += 0.1
	}
	if wordCount < 3 {
		confidence -= 0.2
	}
	if containsAny(lower, vagueWords) {
		confidence -= 0.3
	}

	return clamp01(confidence)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
