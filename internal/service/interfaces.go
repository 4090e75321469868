package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeflow/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . GoalsServiceI,CheckInsServiceI,StreakServiceI,InsightsServiceI

type CreateGoalRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Category    string     `json:"category" validate:"required,goal_category"`
	Frequency   string     `json:"frequency" validate:"required,goal_frequency"`
	TargetValue float64    `json:"target_value" validate:"gt=0"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateGoalRequest holds a partial update: nil fields are left as they are.
type UpdateGoalRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Category    *string    `json:"category" validate:"omitempty,goal_category"`
	Frequency   *string    `json:"frequency" validate:"omitempty,goal_frequency"`
	TargetValue *float64   `json:"target_value" validate:"omitempty,gt=0"`
	EndDate     *time.Time `json:"end_date"`
}

// CreateCheckInRequest.Value is kept raw: numbers, numeric strings or nothing.
type CreateCheckInRequest struct {
	Value any    `json:"value"`
	Note  string `json:"note" validate:"max=1000"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, req *CreateGoalRequest) (*entity.Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists all goals, oldest first
	ListGoals(ctx context.Context) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, id uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error)
	// Deletes goal and all of its check-ins
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	GetGoalProgress(ctx context.Context, id uuid.UUID) (*entity.GoalProgress, error)
	GetCategoryProgress(ctx context.Context) ([]entity.CategoryProgress, error)
}

type CheckInsServiceI interface {
	// Appends check-in, refreshes goal's current value and advances the streak before returning
	CreateCheckIn(ctx context.Context, goalID uuid.UUID, req *CreateCheckInRequest) (*entity.CheckIn, error)
	// Most recent first. Unknown goal gives empty list
	ListCheckIns(ctx context.Context, goalID uuid.UUID) ([]entity.CheckIn, error)
	// Check-ins of every goal, same ordering as ListCheckIns
	ListAllCheckIns(ctx context.Context) ([]entity.CheckIn, error)
}

type StreakServiceI interface {
	GetStreak(ctx context.Context) (entity.StreakState, error)
}

type InsightsServiceI interface {
	GetSummary(ctx context.Context) (*entity.InsightSummary, error)
	// Asks the insight agent about the summary. Upstream failures give a degraded report, not an error
	GenerateInsights(ctx context.Context) (*entity.InsightReport, error)
	// Upstream failures give a degraded fallback reply, not an error
	Chat(ctx context.Context, req *ChatRequest) (*entity.CoachReply, error)
}

// CoachClient talks to the external coaching service.
type CoachClient interface {
	Chat(ctx context.Context, message string) (*entity.CoachReply, error)
	GenerateInsights(ctx context.Context, prompt string) (*entity.InsightReport, error)
}
