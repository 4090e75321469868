package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lifeflow/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . GoalsRepositoryI,CheckInsRepositoryI,StreakRepositoryI

type GoalsRepositoryI interface {
	// Creates new goal. CurrentValue is ignored and stored as 0. Returns stored row
	Create(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists every goal, oldest first
	List(ctx context.Context) ([]*entity.Goal, error)
	// Updates title, category, frequency, target value and end date by ID. CurrentValue is never written here
	Update(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)
	// Deletes goal with id together with its check-ins
	Delete(ctx context.Context, id uuid.UUID) error
	// Locks the goal, reads all its check-ins and stores recompute(id, checkIns) as current value
	RefreshCurrentValue(ctx context.Context, id uuid.UUID, recompute func(goalID uuid.UUID, checkIns []entity.CheckIn) float64) (float64, error)
}

type CheckInsRepositoryI interface {
	// Appends check-in. Fails with ErrGoalNotFound when goal doesn't exist
	Create(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error)
	// Check-ins of a goal, most recent first, insertion order on equal timestamps
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]entity.CheckIn, error)
	// Every check-in, same ordering as ListByGoal
	ListAll(ctx context.Context) ([]entity.CheckIn, error)
	// Returns count of check-ins for goalID
	CountByGoal(ctx context.Context, goalID uuid.UUID) (int, error)
}

type StreakRepositoryI interface {
	// Returns stored streak state, zero state if nothing was stored yet
	Get(ctx context.Context) (entity.StreakState, error)
	// Applies fn to the state atomically: no other update can happen between read and write
	Apply(ctx context.Context, fn func(entity.StreakState) entity.StreakState) (entity.StreakState, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
