package domain

// GoalDomain is a coarse category for a goal. Classification picks one of
// these from keyword evidence; DomainProjects is the default when nothing
// matches.
type GoalDomain string

const (
	DomainFitness   GoalDomain = "fitness"
	DomainLearning  GoalDomain = "learning"
	DomainCareer    GoalDomain = "career"
	DomainFinance   GoalDomain = "finance"
	DomainHealth    GoalDomain = "health"
	DomainNutrition GoalDomain = "nutrition"
	DomainSleep     GoalDomain = "sleep"
	DomainHabits    GoalDomain = "habits"
	DomainSocial    GoalDomain = "social"
	DomainProjects  GoalDomain = "projects"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Flexibility describes how negotiable a stated deadline is.
type Flexibility string

const (
	FlexibilityFixed        Flexibility = "fixed"
	FlexibilityFlexible     Flexibility = "flexible"
	FlexibilityVeryFlexible Flexibility = "very_flexible"
)

type ConstraintCategory string

const (
	ConstraintTime     ConstraintCategory = "time"
	ConstraintResource ConstraintCategory = "resource"
	ConstraintSkill    ConstraintCategory = "skill"
	ConstraintExternal ConstraintCategory = "external"
	ConstraintPersonal ConstraintCategory = "personal"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// MetricConfidence is a qualitative confidence band attached to a single
// metric, distinct from the numeric [0,1] confidence of a whole extractor run.
type MetricConfidence string

const (
	MetricConfidenceHigh   MetricConfidence = "high"
	MetricConfidenceMedium MetricConfidence = "medium"
	MetricConfidenceLow    MetricConfidence = "low"
)

type GoalStatus string

const (
	GoalDraft     GoalStatus = "draft"
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

// ValidGoalStatuses is the canonical set of accepted goal status strings.
var ValidGoalStatuses = map[string]bool{
	"draft": true, "active": true, "completed": true, "abandoned": true,
}
