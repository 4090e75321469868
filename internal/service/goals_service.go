package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
)

type GoalsService struct {
	goalsRepo    repository.GoalsRepositoryI
	checkInsRepo repository.CheckInsRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, checkInsRepo repository.CheckInsRepositoryI) *GoalsService {
	if goalsRepo == nil || checkInsRepo == nil {
		log.Fatal("on goals service provided nil repos")
	}
	return &GoalsService{
		goalsRepo:    goalsRepo,
		checkInsRepo: checkInsRepo,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, req *CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errInvalidBlank("title")
	}
	category, _ := ParseCategory(req.Category)
	frequency, _ := ParseFrequency(req.Frequency)
	goal, err := gs.goalsRepo.Create(ctx, &entity.Goal{
		Title:       title,
		Category:    category,
		Frequency:   frequency,
		TargetValue: req.TargetValue,
		EndDate:     req.EndDate,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidInput) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.goalsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) ListGoals(ctx context.Context) ([]*entity.Goal, error) {
	goals, err := gs.goalsRepo.List(ctx)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) UpdateGoal(ctx context.Context, id uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal, err := gs.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errInvalidBlank("title")
		}
		goal.Title = title
	}
	if req.Category != nil {
		goal.Category, _ = ParseCategory(*req.Category)
	}
	if req.Frequency != nil {
		goal.Frequency, _ = ParseFrequency(*req.Frequency)
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.EndDate != nil {
		goal.EndDate = req.EndDate
	}
	updated, err := gs.goalsRepo.Update(ctx, goal)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound), errors.Is(err, errorvalues.ErrInvalidInput):
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return updated, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	err := gs.goalsRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) GetGoalProgress(ctx context.Context, id uuid.UUID) (*entity.GoalProgress, error) {
	goal, err := gs.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := gs.checkInsRepo.CountByGoal(ctx, id)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return &entity.GoalProgress{
		GoalID:               goal.ID,
		CurrentValue:         goal.CurrentValue,
		TargetValue:          goal.TargetValue,
		CompletionPercentage: CompletionRate(goal),
		CheckIns:             count,
	}, nil
}

func (gs *GoalsService) GetCategoryProgress(ctx context.Context) ([]entity.CategoryProgress, error) {
	goals, err := gs.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryProgress(goals), nil
}
