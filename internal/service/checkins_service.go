package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
)

type CheckInsService struct {
	checkInsRepo repository.CheckInsRepositoryI
	progress     *ProgressAggregator
	streak       *StreakService
	clock        Clock
}

func NewCheckInsService(checkInsRepo repository.CheckInsRepositoryI, progress *ProgressAggregator, streak *StreakService, clock Clock) *CheckInsService {
	if checkInsRepo == nil || progress == nil || streak == nil {
		log.Fatal("on check-ins service provided nil dependencies")
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &CheckInsService{
		checkInsRepo: checkInsRepo,
		progress:     progress,
		streak:       streak,
		clock:        clock,
	}
}

func (cs *CheckInsService) CreateCheckIn(ctx context.Context, goalID uuid.UUID, req *CreateCheckInRequest) (*entity.CheckIn, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	checkIn, err := cs.checkInsRepo.Create(ctx, &entity.CheckIn{
		GoalID:      goalID,
		Value:       CoerceValue(req.Value),
		Note:        req.Note,
		CompletedAt: cs.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	if err := cs.progress.Refresh(ctx, goalID); err != nil {
		return nil, err
	}
	// The check-in is already stored: failing here would make a retry record it twice.
	if _, err := cs.streak.OnCheckIn(ctx, checkIn.CompletedAt); err != nil {
		slog.WarnContext(ctx, "streak not advanced for stored check-in",
			slog.String("check_in_id", checkIn.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	return checkIn, nil
}

func (cs *CheckInsService) ListCheckIns(ctx context.Context, goalID uuid.UUID) ([]entity.CheckIn, error) {
	checkIns, err := cs.checkInsRepo.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return checkIns, nil
}

func (cs *CheckInsService) ListAllCheckIns(ctx context.Context) ([]entity.CheckIn, error) {
	checkIns, err := cs.checkInsRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return checkIns, nil
}
