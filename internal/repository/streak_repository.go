package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/limbo/lifeflow/pkg/entity"
)

type StreakRepository struct {
	conn PgConnection
}

func NewStreakRepoWithConn(conn PgConnection) *StreakRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streakRepo: " + err.Error())
	}
	return &StreakRepository{
		conn: conn,
	}
}

func scanStreak(row rowScanner) (entity.StreakState, error) {
	var (
		state   entity.StreakState
		lastDay *time.Time
	)
	if err := row.Scan(&state.Current, &state.Longest, &lastDay); err != nil {
		return entity.StreakState{}, err
	}
	if lastDay != nil {
		day := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 0, 0, 0, 0, time.UTC)
		state.LastCheckInDay = &day
	}
	return state, nil
}

func (sr *StreakRepository) Get(ctx context.Context) (entity.StreakState, error) {
	state, err := scanStreak(sr.conn.QueryRow(ctx, `SELECT current_streak, longest_streak, last_check_in_day FROM streak_state WHERE id = 1;`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.StreakState{}, nil
		}
		return entity.StreakState{}, errors.New("getting streak state error: " + err.Error())
	}
	return state, nil
}

// Apply serializes streak updates on the row lock of the single streak_state row.
func (sr *StreakRepository) Apply(ctx context.Context, fn func(entity.StreakState) entity.StreakState) (entity.StreakState, error) {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return entity.StreakState{}, errors.New("beginning streak transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO streak_state (id) VALUES (1) ON CONFLICT (id) DO NOTHING;`)
	if err != nil {
		return entity.StreakState{}, errors.New("ensuring streak row error: " + err.Error())
	}
	state, err := scanStreak(tx.QueryRow(ctx, `SELECT current_streak, longest_streak, last_check_in_day FROM streak_state WHERE id = 1 FOR UPDATE;`))
	if err != nil {
		return entity.StreakState{}, errors.New("locking streak state error: " + err.Error())
	}

	next := fn(state)
	_, err = tx.Exec(
		ctx,
		`UPDATE streak_state SET current_streak = $1, longest_streak = $2, last_check_in_day = $3 WHERE id = 1;`,
		next.Current,
		next.Longest,
		next.LastCheckInDay,
	)
	if err != nil {
		return entity.StreakState{}, errors.New("storing streak state error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.StreakState{}, errors.New("committing streak state error: " + err.Error())
	}
	return next, nil
}
