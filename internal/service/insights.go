package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
)

const (
	NoGoalsMessage       = "No goals yet"
	InsightsPromptPrefix = "Generate insights from my progress: "
	ChatFallbackMessage  = "I apologize, but I encountered an error. Please try again."
	ChatEmptyReply       = "I understand. Let me help you."
)

// Summarize renders every goal as "<title> (<category>) - <rate>% completion rate".
func Summarize(goals []*entity.Goal) entity.InsightSummary {
	items := make([]entity.InsightItem, 0, len(goals))
	parts := make([]string, 0, len(goals))
	for _, g := range goals {
		rate := CompletionRate(g)
		items = append(items, entity.InsightItem{
			Category:              g.Category,
			Title:                 g.Title,
			CompletionRatePercent: rate,
		})
		parts = append(parts, fmt.Sprintf("%s (%s) - %d%% completion rate", g.Title, g.Category, rate))
	}
	message := strings.Join(parts, ", ")
	if message == "" {
		message = NoGoalsMessage
	}
	return entity.InsightSummary{
		Items:   items,
		Message: message,
	}
}

type InsightsService struct {
	goalsRepo repository.GoalsRepositoryI
	coach     CoachClient
}

// NewInsightsService accepts a nil coach: every upstream call then degrades.
func NewInsightsService(goalsRepo repository.GoalsRepositoryI, coach CoachClient) *InsightsService {
	return &InsightsService{
		goalsRepo: goalsRepo,
		coach:     coach,
	}
}

func (is *InsightsService) GetSummary(ctx context.Context) (*entity.InsightSummary, error) {
	goals, err := is.goalsRepo.List(ctx)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	summary := Summarize(goals)
	return &summary, nil
}

func (is *InsightsService) GenerateInsights(ctx context.Context) (*entity.InsightReport, error) {
	summary, err := is.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	if len(summary.Items) == 0 {
		return &entity.InsightReport{Summary: *summary}, nil
	}
	if is.coach == nil {
		return &entity.InsightReport{Summary: *summary, Degraded: true}, nil
	}
	report, err := is.coach.GenerateInsights(ctx, InsightsPromptPrefix+summary.Message)
	if err != nil {
		slog.WarnContext(ctx, "insight agent unavailable", slog.String("error", err.Error()))
		return &entity.InsightReport{Summary: *summary, Degraded: true}, nil
	}
	report.Summary = *summary
	report.Degraded = false
	return report, nil
}

func (is *InsightsService) Chat(ctx context.Context, req *ChatRequest) (*entity.CoachReply, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, errInvalidBlank("message")
	}
	if is.coach == nil {
		return &entity.CoachReply{CoachingMessage: ChatFallbackMessage, Degraded: true}, nil
	}
	reply, err := is.coach.Chat(ctx, req.Message)
	if err != nil {
		slog.WarnContext(ctx, "coach agent unavailable", slog.String("error", err.Error()))
		return &entity.CoachReply{CoachingMessage: ChatFallbackMessage, Degraded: true}, nil
	}
	if reply.CoachingMessage == "" {
		reply.CoachingMessage = ChatEmptyReply
	}
	reply.Degraded = false
	return reply, nil
}
