package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryHabits   Category = "HABITS"
	CategoryFinances Category = "FINANCES"
	CategoryCareer   Category = "CAREER"
	CategoryPersonal Category = "PERSONAL"
)

// Categories lists every goal category in display order.
var Categories = []Category{CategoryHabits, CategoryFinances, CategoryCareer, CategoryPersonal}

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

// Goal.CurrentValue is a cached projection of the ledger: the sum of the values
// of all check-ins on the goal. It is only written by the progress aggregator.
type Goal struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Category     Category   `json:"category"`
	Frequency    Frequency  `json:"frequency"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CheckIn struct {
	ID          uuid.UUID `json:"id"`
	GoalID      uuid.UUID `json:"goal_id"`
	Value       float64   `json:"value"`
	Note        string    `json:"note,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// StreakState is shared by all goals. LastCheckInDay holds a calendar date
// (midnight UTC carrying the local year, month and day) or nil before the
// first check-in.
type StreakState struct {
	Current        int        `json:"current"`
	Longest        int        `json:"longest"`
	LastCheckInDay *time.Time `json:"last_check_in_day"`
}

type GoalProgress struct {
	GoalID               uuid.UUID `json:"goal_id"`
	CurrentValue         float64   `json:"current_value"`
	TargetValue          float64   `json:"target_value"`
	CompletionPercentage int       `json:"completion_percentage"`
	CheckIns             int       `json:"check_ins"`
}

type CategoryProgress struct {
	Category       Category `json:"category"`
	Percentage     int      `json:"percentage"`
	CompletedGoals int      `json:"completed_goals"`
	TotalGoals     int      `json:"total_goals"`
}

type InsightItem struct {
	Category              Category `json:"category"`
	Title                 string   `json:"title"`
	CompletionRatePercent int      `json:"completion_rate"`
}

type InsightSummary struct {
	Items   []InsightItem `json:"items"`
	Message string        `json:"message"`
}

// CoachReply is the coaching agent answer. Every field is optional.
type CoachReply struct {
	CoachingMessage      string   `json:"coaching_message,omitempty"`
	BehaviorInsights     string   `json:"behavior_insights,omitempty"`
	PlanRecommendations  string   `json:"plan_recommendations,omitempty"`
	MotivationalInsights string   `json:"motivational_insights,omitempty"`
	ActionItems          []string `json:"action_items,omitempty"`
	Encouragement        string   `json:"encouragement,omitempty"`
	// Degraded is set when the reply is a local fallback instead of an upstream answer.
	Degraded bool `json:"degraded"`
}

type KeyInsight struct {
	Title    string `json:"insight_title,omitempty"`
	Message  string `json:"insight_message,omitempty"`
	Category string `json:"category,omitempty"`
}

// InsightReport combines the local summary with whatever the insight agent returned.
type InsightReport struct {
	Summary                 InsightSummary `json:"summary"`
	KeyInsights             []KeyInsight   `json:"key_insights,omitempty"`
	AchievementsHighlighted []string       `json:"achievements_highlighted,omitempty"`
	ProgressSummary         string         `json:"progress_summary,omitempty"`
	EncouragementMessage    string         `json:"encouragement_message,omitempty"`
	Degraded                bool           `json:"degraded"`
}
