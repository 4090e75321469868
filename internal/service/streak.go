package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
)

// CalendarDay drops the time of day of t as seen in loc. The date is returned
// as midnight UTC so days compare and add without zone offsets.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AdvanceStreak applies one check-in made on day to state. day must come from
// CalendarDay. Any day that does not directly follow the last one, including
// an earlier day, restarts the streak at 1.
func AdvanceStreak(state entity.StreakState, day time.Time) entity.StreakState {
	next := state
	switch {
	case state.LastCheckInDay == nil:
		next.Current = 1
	case day.Equal(*state.LastCheckInDay):
		return state
	case day.Equal(state.LastCheckInDay.AddDate(0, 0, 1)):
		next.Current = state.Current + 1
	default:
		next.Current = 1
	}
	next.Longest = max(state.Longest, next.Current)
	next.LastCheckInDay = &day
	return next
}

type StreakService struct {
	repo repository.StreakRepositoryI
	loc  *time.Location
}

// NewStreakService counts days in loc; nil means time.Local.
func NewStreakService(repo repository.StreakRepositoryI, loc *time.Location) *StreakService {
	if loc == nil {
		loc = time.Local
	}
	return &StreakService{
		repo: repo,
		loc:  loc,
	}
}

// OnCheckIn advances the global streak for a check-in made at completedAt.
// Check-ins are applied in arrival order, not by timestamp.
func (ss *StreakService) OnCheckIn(ctx context.Context, completedAt time.Time) (entity.StreakState, error) {
	day := CalendarDay(completedAt, ss.loc)
	state, err := ss.repo.Apply(ctx, func(current entity.StreakState) entity.StreakState {
		return AdvanceStreak(current, day)
	})
	if err != nil {
		return entity.StreakState{}, errors.New("streak repository error: " + err.Error())
	}
	slog.DebugContext(ctx, "streak advanced",
		slog.Int("current", state.Current),
		slog.Int("longest", state.Longest),
		slog.String("day", day.Format(time.DateOnly)),
	)
	return state, nil
}

func (ss *StreakService) GetStreak(ctx context.Context) (entity.StreakState, error) {
	state, err := ss.repo.Get(ctx)
	if err != nil {
		return entity.StreakState{}, errors.New("streak repository error: " + err.Error())
	}
	return state, nil
}
