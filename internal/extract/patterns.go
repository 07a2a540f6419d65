package extract

import (
	"regexp"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
)

// List caps shared by extractors and the aggregator.
const (
	maxMilestones      = 5
	maxMetrics         = 5
	maxRecommendations = 5
)

// The tables below are the shared pattern library for all extractors. They
// are compiled once at init and never mutated, so extractors are safe to run
// concurrently. Several chains are order-sensitive: the first matching rule
// wins, and domain ties break toward the earlier entry.

// domainKeywords maps each goal domain to its keyword evidence. Slice order
// is the tie-break order for classification.
var domainKeywords = []struct {
	Domain   domain.GoalDomain
	Keywords []string
}{
	{domain.DomainFitness, []string{"workout", "exercise", "run", "gym", "weight", "muscle", "cardio", "marathon", "fitness"}},
	{domain.DomainLearning, []string{"learn", "study", "course", "skill", "education", "training", "certification", "language"}},
	{domain.DomainCareer, []string{"job", "career", "promotion", "salary", "work", "professional", "business", "interview", "promoted", "developer", "senior"}},
	{domain.DomainFinance, []string{"money", "save", "budget", "invest", "debt", "financial", "income", "expense"}},
	{domain.DomainHealth, []string{"health", "doctor", "medical", "diet", "nutrition", "sleep", "wellness", "therapy"}},
	{domain.DomainNutrition, []string{"eat", "food", "diet", "nutrition", "meal", "calories", "protein", "vegetables"}},
	{domain.DomainSleep, []string{"sleep", "rest", "bedtime", "wake", "hours", "insomnia", "tired"}},
	{domain.DomainHabits, []string{"habit", "routine", "daily", "practice", "consistency", "discipline"}},
	{domain.DomainSocial, []string{"friends", "family", "relationship", "social", "network", "community"}},
	{domain.DomainProjects, []string{"project", "build", "create", "develop", "complete", "finish", "accomplish"}},
}

// actionPatterns are tried in priority order; the first capture wins.
var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(learn|study|master|understand)\b`),
	regexp.MustCompile(`\b(run|exercise|train|workout)\b`),
	regexp.MustCompile(`\b(save|earn|invest|budget)\b`),
	regexp.MustCompile(`\b(build|create|develop|make)\b`),
	regexp.MustCompile(`\b(lose|gain|improve|increase|decrease)\b`),
	regexp.MustCompile(`\b(complete|finish|achieve|accomplish)\b`),
	regexp.MustCompile(`\b(start|begin|initiate)\b`),
	regexp.MustCompile(`\b(read|write|practice)\b`),
}

// actionFillerWords are skipped when falling back to a verb-like word scan.
var actionFillerWords = map[string]bool{
	"want": true, "need": true, "plan": true, "hope": true, "aim": true, "goal": true,
}

var outcomePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:to|want to|need to|plan to|aim to|goal is to)\s+(.+?)(?:\.|$|by|in|within)`),
	regexp.MustCompile(`(?:achieve|accomplish|complete|finish|reach)\s+(.+?)(?:\.|$|by|in|within)`),
	regexp.MustCompile(`(?:become|get|obtain|gain)\s+(.+?)(?:\.|$|by|in|within)`),
}

var motivationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:because|since|as|for|to help|in order to)\s+(.+?)(?:\.|$)`),
	regexp.MustCompile(`(?:so that|so I can|to be able to)\s+(.+?)(?:\.|$)`),
}

var conditionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:but|however|although|despite|even though)\s+(.+?)(?:\.|$)`),
	regexp.MustCompile(`(?:with|using|through|via)\s+(.+?)(?:\.|$)`),
}

// Urgency vocabularies, checked high -> medium -> low.
var (
	highUrgencyWords   = []string{"urgent", "asap", "immediately", "critical", "emergency", "deadline", "must"}
	mediumUrgencyWords = []string{"soon", "quickly", "important", "priority", "need to", "should"}
	lowUrgencyWords    = []string{"eventually", "someday", "when possible", "would like", "hope to"}

	highUrgencyDates   = regexp.MustCompile(`\b(today|tomorrow|this week|next week)\b`)
	mediumUrgencyDates = regexp.MustCompile(`\b(this month|next month|soon)\b`)
	lowUrgencyDates    = regexp.MustCompile(`\b(this year|next year|someday)\b`)
)

var vagueWords = []string{"something", "stuff", "things", "whatever"}

// timePhrasePattern pairs a regex with the submatch index to collect:
// 0 keeps the full match, 1 keeps the first capture group.
type timePhrasePattern struct {
	re    *regexp.Regexp
	group int
}

var timePhrasePatterns = []timePhrasePattern{
	{regexp.MustCompile(`\b(?:by|before|until|deadline)\s+([^.]+?)(?:\.|$|,)`), 1},
	{regexp.MustCompile(`\b(?:in|within|over|during)\s+(\d+\s+(?:days?|weeks?|months?|years?))`), 1},
	{regexp.MustCompile(`\b(?:next|this|coming)\s+(week|month|year|summer|winter|spring|fall)`), 1},
	{regexp.MustCompile(`\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?,?\s*\d{4}?`), 0},
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`), 0},
	{regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{2,4}\b`), 0},
	{regexp.MustCompile(`\b(?:today|tomorrow|yesterday)\b`), 0},
	{regexp.MustCompile(`\b(?:asap|immediately|soon|eventually)\b`), 0},
}

var (
	slashDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	dashDatePattern  = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{2,4})\b`)
	monthDatePattern = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4})?`)
)

var monthNumbers = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

var durationPatterns = []struct {
	re   *regexp.Regexp
	unit string
}{
	{regexp.MustCompile(`(\d+)\s*hours?`), "hours"},
	{regexp.MustCompile(`(\d+)\s*days?`), "days"},
	{regexp.MustCompile(`(\d+)\s*weeks?`), "weeks"},
	{regexp.MustCompile(`(\d+)\s*months?`), "months"},
	{regexp.MustCompile(`(\d+)\s*years?`), "years"},
}

var milestonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:milestone|checkpoint|phase|step)\s*\d*:?\s*([^.]+?)(?:\.|$|,)`),
	regexp.MustCompile(`(?:first|second|third|then|next|finally)\s+([^.]+?)(?:\.|$|,)`),
	regexp.MustCompile(`(?:by\s+\w+\s+\d+|in\s+\d+\s+\w+)\s+([^.]+?)(?:\.|$|,)`),
}

// Flexibility vocabularies, checked very_flexible -> flexible -> fixed.
var (
	veryFlexibleWords = []string{"eventually", "someday", "whenever", "no rush", "no hurry"}
	flexibleWords     = []string{"around", "approximately", "roughly", "about", "flexible", "when possible"}
	fixedWords        = []string{"deadline", "must", "required", "due", "exactly", "precisely"}
)

// metricPattern ties a numeric regex to the metric type and default unit it
// produces. The first capture group is the value; a second group, when
// present and matched, overrides the unit.
type metricPattern struct {
	re         *regexp.Regexp
	metricType string
	unit       string
}

var metricPatterns = []metricPattern{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(pounds?|lbs?|kg|kilograms?)`), "weight", "lbs"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(miles?|km|kilometers?)`), "distance", "miles"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(hours?|hrs?)`), "time", "hours"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(minutes?|mins?)`), "time", "minutes"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(dollars?|\$|USD)`), "money", "dollars"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent)`), "percentage", "percent"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(times?|reps?|repetitions?)`), "count", "times"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(pages?|chapters?|books?)`), "reading", "pages"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(words?|characters?)`), "writing", "words"},
}

// implicitMetricTrigger emits a fixed-shape metric when any of its keywords
// appear. Multiple triggers may all fire on one description.
type implicitMetricTrigger struct {
	keywords  []string
	name      string
	unit      string
	target    float64
	reasoning string
}

var implicitMetricTriggers = []implicitMetricTrigger{
	{[]string{"workout", "exercise", "fitness", "gym", "working", "shape"},
		"workout_sessions", "sessions", 12, "Fitness goal typically measured by workout frequency"},
	{[]string{"learn", "study", "course", "skill"},
		"study_hours", "hours", 20, "Learning goals typically measured by time invested"},
	{[]string{"read", "book", "chapter"},
		"books_read", "books", 1, "Reading goals typically measured by books completed"},
	{[]string{"daily", "habit", "routine", "every day"},
		"consecutive_days", "days", 30, "Habit goals typically measured by consistency"},
	{[]string{"project", "build", "create", "complete"},
		"completion_percentage", "percent", 100, "Project goals typically measured by completion percentage"},
}

// constraintCategoryPatterns drive the five category extractors. Patterns
// with multiple capture groups have their non-empty groups joined with a
// space.
var constraintCategoryPatterns = []struct {
	category domain.ConstraintCategory
	patterns []*regexp.Regexp
}{
	{domain.ConstraintTime, []*regexp.Regexp{
		regexp.MustCompile(`(?:only|just)\s+(\d+\s+(?:hours?|minutes?|days?)\s+(?:per|each|a)\s+\w+)`),
		regexp.MustCompile(`(?:limited|restricted)\s+(?:to|by)\s+([^.]+time[^.]*)`),
		regexp.MustCompile(`(?:busy|occupied|unavailable)\s+([^.]+)`),
		regexp.MustCompile(`(?:deadline|due)\s+([^.]+)`),
		regexp.MustCompile(`(\d+\s+hours?\s+per\s+\w+)`),
	}},
	{domain.ConstraintResource, []*regexp.Regexp{
		regexp.MustCompile(`(?:budget|money|cost)\s+(?:of|is|limited to)\s+([^.]+)`),
		regexp.MustCompile(`(?:no|without|lack of|limited)\s+(money|budget|funds|equipment|tools|resources)`),
		regexp.MustCompile(`(?:can't afford|too expensive|costly)\s+([^.]+)`),
		regexp.MustCompile(`(?:need|require|must have)\s+(equipment|tools|resources|materials)\s+([^.]+)`),
	}},
	{domain.ConstraintSkill, []*regexp.Regexp{
		regexp.MustCompile(`(?:don't know|never|no experience|beginner|new to)\s+([^.]+)`),
		regexp.MustCompile(`(?:need to learn|must learn|have to study)\s+([^.]+)`),
		regexp.MustCompile(`(?:lack|missing|without)\s+(skills?|knowledge|experience)\s+([^.]*)`),
		regexp.MustCompile(`(?:difficult|hard|challenging)\s+(?:because|since)\s+([^.]+)`),
	}},
	{domain.ConstraintExternal, []*regexp.Regexp{
		regexp.MustCompile(`(?:depends on|waiting for|need approval from)\s+([^.]+)`),
		regexp.MustCompile(`(?:weather|season|location)\s+(?:dependent|specific|limited)\s+([^.]*)`),
		regexp.MustCompile(`(?:others|family|work|job)\s+(?:prevents?|limits?|restricts?)\s+([^.]*)`),
		regexp.MustCompile(`(?:availability|schedule|calendar)\s+(?:conflicts?|issues?)\s+([^.]*)`),
	}},
	{domain.ConstraintPersonal, []*regexp.Regexp{
		regexp.MustCompile(`(?:afraid|scared|worried|anxious)\s+(?:of|about|that)\s+([^.]+)`),
		regexp.MustCompile(`(?:health|medical|physical)\s+(?:issues?|problems?|limitations?)\s+([^.]*)`),
		regexp.MustCompile(`(?:motivation|discipline|willpower)\s+(?:issues?|problems?|lack)\s+([^.]*)`),
		regexp.MustCompile(`(?:procrastination|lazy|unmotivated)\s+([^.]*)`),
	}},
}

var (
	highSeverityWords   = []string{"impossible", "never", "can't", "unable", "critical", "major"}
	mediumSeverityWords = []string{"difficult", "challenging", "limited", "restricted", "problem"}
)

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
