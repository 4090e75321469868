package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepoWithConn(conn PgConnection) *CheckInsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkInsRepo: " + err.Error())
	}
	return &CheckInsRepository{
		conn: conn,
	}
}

func (cr *CheckInsRepository) Create(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error) {
	var id uuid.UUID
	err := cr.conn.QueryRow(
		ctx,
		`INSERT INTO check_ins (goal_id, value, note, completed_at) VALUES ($1, $2, $3, $4) RETURNING id;`,
		checkIn.GoalID,
		checkIn.Value,
		checkIn.Note,
		checkIn.CompletedAt,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("creating check-in db error: " + err.Error())
	}
	created := *checkIn
	created.ID = id
	return &created, nil
}

func (cr *CheckInsRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]entity.CheckIn, error) {
	return cr.list(ctx, `SELECT id, goal_id, value, note, completed_at FROM check_ins WHERE goal_id = $1 ORDER BY completed_at DESC, seq ASC;`, goalID)
}

func (cr *CheckInsRepository) ListAll(ctx context.Context) ([]entity.CheckIn, error) {
	return cr.list(ctx, `SELECT id, goal_id, value, note, completed_at FROM check_ins ORDER BY completed_at DESC, seq ASC;`)
}

func (cr *CheckInsRepository) list(ctx context.Context, query string, args ...any) ([]entity.CheckIn, error) {
	rows, err := cr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing check-ins error: " + err.Error())
	}
	defer rows.Close()
	checkIns := make([]entity.CheckIn, 0)
	for rows.Next() {
		var c entity.CheckIn
		if err := rows.Scan(&c.ID, &c.GoalID, &c.Value, &c.Note, &c.CompletedAt); err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		checkIns = append(checkIns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning check-ins: " + err.Error())
	}
	return checkIns, nil
}

func (cr *CheckInsRepository) CountByGoal(ctx context.Context, goalID uuid.UUID) (int, error) {
	var count int
	err := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM check_ins WHERE goal_id = $1;`, goalID).Scan(&count)
	if err != nil {
		return 0, errors.New("counting check-ins error: " + err.Error())
	}
	return count, nil
}
