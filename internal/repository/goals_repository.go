package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

const goalColumns = `id, title, category, frequency, target_value, current_value, end_date, created_at, updated_at`

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func scanGoal(row rowScanner) (*entity.Goal, error) {
	var (
		goal                entity.Goal
		category, frequency string
		endDate             *time.Time
	)
	err := row.Scan(
		&goal.ID,
		&goal.Title,
		&category,
		&frequency,
		&goal.TargetValue,
		&goal.CurrentValue,
		&endDate,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	goal.Category = entity.Category(category)
	goal.Frequency = entity.Frequency(frequency)
	goal.EndDate = endDate
	return &goal, nil
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	row := gr.conn.QueryRow(
		ctx,
		`INSERT INTO goals (title, category, frequency, target_value, end_date) VALUES ($1, $2, $3, $4, $5) RETURNING `+goalColumns+`;`,
		goal.Title,
		string(goal.Category),
		string(goal.Frequency),
		goal.TargetValue,
		goal.EndDate,
	)
	created, err := scanGoal(row)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return nil, errorvalues.ErrInvalidInput
		}
		return nil, errors.New("creating goal db error: " + err.Error())
	}
	return created, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) List(ctx context.Context) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY created_at ASC;`)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning goals: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	row := gr.conn.QueryRow(
		ctx,
		`UPDATE goals SET title = $1, category = $2, frequency = $3, target_value = $4, end_date = $5, updated_at = NOW() WHERE id = $6 RETURNING `+goalColumns+`;`,
		goal.Title,
		string(goal.Category),
		string(goal.Frequency),
		goal.TargetValue,
		goal.EndDate,
		goal.ID,
	)
	updated, err := scanGoal(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, errorvalues.ErrGoalNotFound
		case pgErrorCode(err) == pgCheckViolation:
			return nil, errorvalues.ErrInvalidInput
		}
		return nil, errors.New("updating goal error: " + err.Error())
	}
	return updated, nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

// RefreshCurrentValue holds the goal row lock for the whole read-sum-write, so
// concurrent refreshes of one goal commit one after another and each re-reads
// the full ledger.
func (gr *GoalsRepository) RefreshCurrentValue(ctx context.Context, id uuid.UUID, recompute func(goalID uuid.UUID, checkIns []entity.CheckIn) float64) (float64, error) {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning refresh transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var locked uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM goals WHERE id = $1 FOR UPDATE;`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrGoalNotFound
		}
		return 0, errors.New("locking goal error: " + err.Error())
	}

	rows, err := tx.Query(ctx, `SELECT id, goal_id, value, note, completed_at FROM check_ins WHERE goal_id = $1;`, id)
	if err != nil {
		return 0, errors.New("reading check-ins error: " + err.Error())
	}
	checkIns := make([]entity.CheckIn, 0)
	for rows.Next() {
		var c entity.CheckIn
		if err := rows.Scan(&c.ID, &c.GoalID, &c.Value, &c.Note, &c.CompletedAt); err != nil {
			rows.Close()
			return 0, errors.New("check-in row parsing error: " + err.Error())
		}
		checkIns = append(checkIns, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, errors.New("unexpected check-in rows error: " + err.Error())
	}

	total := recompute(id, checkIns)
	_, err = tx.Exec(ctx, `UPDATE goals SET current_value = $1, updated_at = NOW() WHERE id = $2;`, total, id)
	if err != nil {
		return 0, errors.New("storing current value error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, errors.New("committing refresh error: " + err.Error())
	}
	return total, nil
}
