package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

// MemoryStore keeps goals, check-ins and the streak in process memory.
// It backs STORAGE=memory and is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	goals    map[uuid.UUID]*entity.Goal
	order    []uuid.UUID     // goal ids in creation order
	checkIns []entity.CheckIn // insertion order

	streakMu sync.Mutex
	streak   entity.StreakState

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		goals: make(map[uuid.UUID]*entity.Goal),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Goals() *MemoryGoalsRepository {
	return &MemoryGoalsRepository{store: s}
}

func (s *MemoryStore) CheckIns() *MemoryCheckInsRepository {
	return &MemoryCheckInsRepository{store: s}
}

func (s *MemoryStore) Streak() *MemoryStreakRepository {
	return &MemoryStreakRepository{store: s}
}

type MemoryGoalsRepository struct {
	store *MemoryStore
}

func (r *MemoryGoalsRepository) Create(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stored := *goal
	stored.ID = uuid.New()
	stored.CurrentValue = 0
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.goals[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	out := stored
	return &out, nil
}

func (r *MemoryGoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[id]
	if !ok {
		return nil, errorvalues.ErrGoalNotFound
	}
	out := *goal
	return &out, nil
}

func (r *MemoryGoalsRepository) List(ctx context.Context) ([]*entity.Goal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]*entity.Goal, 0, len(s.order))
	for _, id := range s.order {
		g := *s.goals[id]
		goals = append(goals, &g)
	}
	return goals, nil
}

func (r *MemoryGoalsRepository) Update(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.goals[goal.ID]
	if !ok {
		return nil, errorvalues.ErrGoalNotFound
	}
	stored.Title = goal.Title
	stored.Category = goal.Category
	stored.Frequency = goal.Frequency
	stored.TargetValue = goal.TargetValue
	stored.EndDate = goal.EndDate
	stored.UpdatedAt = s.now()
	out := *stored
	return &out, nil
}

// Delete removes the goal and cascades to its check-ins.
func (r *MemoryGoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[id]; !ok {
		return errorvalues.ErrGoalNotFound
	}
	delete(s.goals, id)
	for i, gid := range s.order {
		if gid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	kept := s.checkIns[:0]
	for _, c := range s.checkIns {
		if c.GoalID != id {
			kept = append(kept, c)
		}
	}
	s.checkIns = kept
	return nil
}

// RefreshCurrentValue runs under the write lock, so no append can land
// between reading the ledger and storing the sum.
func (r *MemoryGoalsRepository) RefreshCurrentValue(ctx context.Context, id uuid.UUID, recompute func(goalID uuid.UUID, checkIns []entity.CheckIn) float64) (float64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, ok := s.goals[id]
	if !ok {
		return 0, errorvalues.ErrGoalNotFound
	}
	checkIns := make([]entity.CheckIn, 0)
	for _, c := range s.checkIns {
		if c.GoalID == id {
			checkIns = append(checkIns, c)
		}
	}
	goal.CurrentValue = recompute(id, checkIns)
	goal.UpdatedAt = s.now()
	return goal.CurrentValue, nil
}

type MemoryCheckInsRepository struct {
	store *MemoryStore
}

func (r *MemoryCheckInsRepository) Create(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[checkIn.GoalID]; !ok {
		return nil, errorvalues.ErrGoalNotFound
	}
	created := *checkIn
	created.ID = uuid.New()
	s.checkIns = append(s.checkIns, created)
	return &created, nil
}

func (r *MemoryCheckInsRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]entity.CheckIn, error) {
	return r.list(func(c entity.CheckIn) bool { return c.GoalID == goalID }), nil
}

func (r *MemoryCheckInsRepository) ListAll(ctx context.Context) ([]entity.CheckIn, error) {
	return r.list(func(entity.CheckIn) bool { return true }), nil
}

// list copies matching check-ins and orders them most recent first. The sort
// is stable over insertion order, which breaks timestamp ties.
func (r *MemoryCheckInsRepository) list(match func(entity.CheckIn) bool) []entity.CheckIn {
	s := r.store
	s.mu.RLock()
	result := make([]entity.CheckIn, 0)
	for _, c := range s.checkIns {
		if match(c) {
			result = append(result, c)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompletedAt.After(result[j].CompletedAt)
	})
	return result
}

func (r *MemoryCheckInsRepository) CountByGoal(ctx context.Context, goalID uuid.UUID) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, c := range s.checkIns {
		if c.GoalID == goalID {
			count++
		}
	}
	return count, nil
}

type MemoryStreakRepository struct {
	store *MemoryStore
}

func (r *MemoryStreakRepository) Get(ctx context.Context) (entity.StreakState, error) {
	s := r.store
	s.streakMu.Lock()
	defer s.streakMu.Unlock()
	return copyStreak(s.streak), nil
}

func (r *MemoryStreakRepository) Apply(ctx context.Context, fn func(entity.StreakState) entity.StreakState) (entity.StreakState, error) {
	s := r.store
	s.streakMu.Lock()
	defer s.streakMu.Unlock()

	s.streak = copyStreak(fn(copyStreak(s.streak)))
	return copyStreak(s.streak), nil
}

func copyStreak(state entity.StreakState) entity.StreakState {
	if state.LastCheckInDay != nil {
		day := *state.LastCheckInDay
		state.LastCheckInDay = &day
	}
	return state
}

var (
	_ GoalsRepositoryI    = (*MemoryGoalsRepository)(nil)
	_ CheckInsRepositoryI = (*MemoryCheckInsRepository)(nil)
	_ StreakRepositoryI   = (*MemoryStreakRepository)(nil)
	_ GoalsRepositoryI    = (*GoalsRepository)(nil)
	_ CheckInsRepositoryI = (*CheckInsRepository)(nil)
	_ StreakRepositoryI   = (*StreakRepository)(nil)
)
