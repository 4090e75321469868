package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository/mocks"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateUpstreamError
	stateEmptyReply
)

type coachMock struct {
	state      mockState
	lastPrompt string
}

func (cm *coachMock) Chat(ctx context.Context, message string) (*entity.CoachReply, error) {
	cm.lastPrompt = message
	switch cm.state {
	case stateUpstreamError:
		return nil, errorvalues.ErrUpstreamUnavailable
	case stateEmptyReply:
		return &entity.CoachReply{ActionItems: []string{"drink water"}}, nil
	default:
		return &entity.CoachReply{
			CoachingMessage: "Keep going",
			ActionItems:     []string{"walk", "read"},
			Encouragement:   "You got this",
		}, nil
	}
}

func (cm *coachMock) GenerateInsights(ctx context.Context, prompt string) (*entity.InsightReport, error) {
	cm.lastPrompt = prompt
	switch cm.state {
	case stateUpstreamError:
		return nil, errorvalues.ErrUpstreamUnavailable
	default:
		return &entity.InsightReport{
			KeyInsights:     []entity.KeyInsight{{Title: "Consistency", Message: "You check in daily", Category: "HABITS"}},
			ProgressSummary: "Solid week",
		}, nil
	}
}

var summaryGoals = []*entity.Goal{
	{Title: "Run", Category: entity.CategoryHabits, CurrentValue: 3, TargetValue: 7},
	{Title: "Save", Category: entity.CategoryFinances, CurrentValue: 1500, TargetValue: 1000},
	{Title: "Broken", Category: entity.CategoryPersonal, CurrentValue: 5, TargetValue: 0},
}

func TestSummarize(t *testing.T) {
	t.Run("goals", func(t *testing.T) {
		summary := service.Summarize(summaryGoals)
		assert.Equal(t, []entity.InsightItem{
			{Category: entity.CategoryHabits, Title: "Run", CompletionRatePercent: 43},
			{Category: entity.CategoryFinances, Title: "Save", CompletionRatePercent: 100},
			{Category: entity.CategoryPersonal, Title: "Broken", CompletionRatePercent: 0},
		}, summary.Items)
		assert.Equal(t,
			"Run (HABITS) - 43% completion rate, Save (FINANCES) - 100% completion rate, Broken (PERSONAL) - 0% completion rate",
			summary.Message,
		)
	})
	t.Run("no goals", func(t *testing.T) {
		summary := service.Summarize(nil)
		assert.Empty(t, summary.Items)
		assert.Equal(t, "No goals yet", summary.Message)
	})
	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, service.Summarize(summaryGoals), service.Summarize(summaryGoals))
	})
}

func TestGenerateInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)
	coach := &coachMock{state: stateSuccess}
	serv := service.NewInsightsService(goalsRepo, coach)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		goalsRepo.EXPECT().List(gomock.Any()).Return(summaryGoals, nil)
		report, err := serv.GenerateInsights(ctx)
		require.NoError(t, err)
		assert.False(t, report.Degraded)
		assert.Equal(t, "Solid week", report.ProgressSummary)
		assert.Len(t, report.Summary.Items, 3)
		assert.Equal(t, "Generate insights from my progress: "+report.Summary.Message, coach.lastPrompt)
	})
	t.Run("upstream failure degrades", func(t *testing.T) {
		coach.state = stateUpstreamError
		goalsRepo.EXPECT().List(gomock.Any()).Return(summaryGoals, nil)
		report, err := serv.GenerateInsights(ctx)
		require.NoError(t, err)
		assert.True(t, report.Degraded)
		assert.Empty(t, report.KeyInsights)
		assert.Len(t, report.Summary.Items, 3)
	})
	t.Run("no goals skips the agent", func(t *testing.T) {
		coach.state = stateSuccess
		coach.lastPrompt = ""
		goalsRepo.EXPECT().List(gomock.Any()).Return([]*entity.Goal{}, nil)
		report, err := serv.GenerateInsights(ctx)
		require.NoError(t, err)
		assert.False(t, report.Degraded)
		assert.Equal(t, "No goals yet", report.Summary.Message)
		assert.Empty(t, coach.lastPrompt)
	})
	t.Run("repository error", func(t *testing.T) {
		goalsRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
		_, err := serv.GenerateInsights(ctx)
		assert.Error(t, err)
	})
	t.Run("summary", func(t *testing.T) {
		goalsRepo.EXPECT().List(gomock.Any()).Return(summaryGoals, nil)
		summary, err := serv.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, service.Summarize(summaryGoals), *summary)
	})
}

func TestChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)
	coach := &coachMock{state: stateSuccess}
	serv := service.NewInsightsService(goalsRepo, coach)
	ctx := context.Background()
	testCases := []struct {
		Desc            string
		State           mockState
		Message         string
		Error           error
		ExpectedMessage string
		Degraded        bool
	}{
		{Desc: "success", State: stateSuccess, Message: "How am I doing?", ExpectedMessage: "Keep going"},
		{Desc: "empty coaching message", State: stateEmptyReply, Message: "Hi", ExpectedMessage: "I understand. Let me help you."},
		{Desc: "upstream failure", State: stateUpstreamError, Message: "Hi", ExpectedMessage: "I apologize, but I encountered an error. Please try again.", Degraded: true},
		{Desc: "empty message", State: stateSuccess, Message: "", Error: errorvalues.ErrInvalidInput},
		{Desc: "blank message", State: stateSuccess, Message: "   ", Error: errorvalues.ErrInvalidInput},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			coach.state = tc.State
			reply, err := serv.Chat(ctx, &service.ChatRequest{Message: tc.Message})
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedMessage, reply.CoachingMessage)
			assert.Equal(t, tc.Degraded, reply.Degraded)
		})
	}
	t.Run("without coach", func(t *testing.T) {
		reply, err := service.NewInsightsService(goalsRepo, nil).Chat(ctx, &service.ChatRequest{Message: "Hi"})
		require.NoError(t, err)
		assert.True(t, reply.Degraded)
		assert.Equal(t, service.ChatFallbackMessage, reply.CoachingMessage)
	})
}
