package repository_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalColumns = []string{"id", "title", "category", "frequency", "target_value", "current_value", "end_date", "created_at", "updated_at"}

func sumValues(goalID uuid.UUID, checkIns []entity.CheckIn) float64 {
	var total float64
	for _, c := range checkIns {
		if c.GoalID == goalID {
			total += c.Value
		}
	}
	return total
}

func testGoal() entity.Goal {
	endDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	return entity.Goal{
		ID:           uuid.New(),
		Title:        "Read 12 books",
		Category:     entity.CategoryPersonal,
		Frequency:    entity.FrequencyMonthly,
		TargetValue:  12,
		CurrentValue: 3,
		EndDate:      &endDate,
		CreatedAt:    time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func goalRow(rows *pgxmock.Rows, g entity.Goal) *pgxmock.Rows {
	return rows.AddRow(g.ID, g.Title, string(g.Category), string(g.Frequency), g.TargetValue, g.CurrentValue, g.EndDate, g.CreatedAt, g.UpdatedAt)
}

func TestCreateGoal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	goal := testGoal()
	query := regexp.QuoteMeta(`INSERT INTO goals (title, category, frequency, target_value, end_date) VALUES ($1, $2, $3, $4, $5) RETURNING id, title, category, frequency, target_value, current_value, end_date, created_at, updated_at;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		stored := goal
		stored.CurrentValue = 0
		mock.ExpectQuery(query).
			WithArgs(goal.Title, "PERSONAL", "MONTHLY", goal.TargetValue, goal.EndDate).
			WillReturnRows(goalRow(pgxmock.NewRows(goalColumns), stored))
		result, err := repo.Create(ctx, &goal)
		assert.NoError(t, err)
		assert.Equal(t, stored, *result)
	})
	t.Run("check violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.Title, "PERSONAL", "MONTHLY", goal.TargetValue, goal.EndDate).
			WillReturnError(&pgconn.PgError{Code: "23514"})
		_, err := repo.Create(ctx, &goal)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.Title, "PERSONAL", "MONTHLY", goal.TargetValue, goal.EndDate).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &goal)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGoalByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	goal := testGoal()
	query := regexp.QuoteMeta(`SELECT id, title, category, frequency, target_value, current_value, end_date, created_at, updated_at FROM goals WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.ID).
			WillReturnRows(goalRow(pgxmock.NewRows(goalColumns), goal))
		result, err := repo.GetByID(ctx, goal.ID)
		assert.NoError(t, err)
		assert.Equal(t, goal, *result)
	})
	t.Run("without end date", func(t *testing.T) {
		open := goal
		open.EndDate = nil
		mock.ExpectQuery(query).
			WithArgs(goal.ID).
			WillReturnRows(pgxmock.NewRows(goalColumns).
				AddRow(open.ID, open.Title, "PERSONAL", "MONTHLY", open.TargetValue, open.CurrentValue, (*time.Time)(nil), open.CreatedAt, open.UpdatedAt),
			)
		result, err := repo.GetByID(ctx, goal.ID)
		assert.NoError(t, err)
		assert.Nil(t, result.EndDate)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, goal.ID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, goal.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

func TestListGoals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	first, second := testGoal(), testGoal()
	second.Title = "Save $1000"
	second.Category = entity.CategoryFinances
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	query := regexp.QuoteMeta(`SELECT id, title, category, frequency, target_value, current_value, end_date, created_at, updated_at FROM goals ORDER BY created_at ASC;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(goalColumns)
		goalRow(rows, first)
		goalRow(rows, second)
		mock.ExpectQuery(query).WillReturnRows(rows)
		result, err := repo.List(ctx)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, first, *result[0])
		assert.Equal(t, second, *result[1])
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(goalColumns))
		result, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestUpdateGoal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	goal := testGoal()
	query := regexp.QuoteMeta(`UPDATE goals SET title = $1, category = $2, frequency = $3, target_value = $4, end_date = $5, updated_at = NOW() WHERE id = $6 RETURNING id, title, category, frequency, target_value, current_value, end_date, created_at, updated_at;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.Title, "PERSONAL", "MONTHLY", goal.TargetValue, goal.EndDate, goal.ID).
			WillReturnRows(goalRow(pgxmock.NewRows(goalColumns), goal))
		result, err := repo.Update(ctx, &goal)
		assert.NoError(t, err)
		assert.Equal(t, goal, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.Title, "PERSONAL", "MONTHLY", goal.TargetValue, goal.EndDate, goal.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Update(ctx, &goal)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("check violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(goal.Title, "PERSONAL", "MONTHLY", goal.TargetValue, goal.EndDate, goal.ID).
			WillReturnError(&pgconn.PgError{Code: "23514"})
		_, err := repo.Update(ctx, &goal)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
}

func TestDeleteGoal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM goals WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}

func TestRefreshCurrentValue(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewGoalsRepoWithConn(mock)
	lockQuery := regexp.QuoteMeta(`SELECT id FROM goals WHERE id = $1 FOR UPDATE;`)
	checkInsQuery := regexp.QuoteMeta(`SELECT id, goal_id, value, note, completed_at FROM check_ins WHERE goal_id = $1;`)
	completedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	updateQuery := regexp.QuoteMeta(`UPDATE goals SET current_value = $1, updated_at = NOW() WHERE id = $2;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectQuery(checkInsQuery).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(checkInColumns).
				AddRow(uuid.New(), id, 2.5, "", completedAt).
				AddRow(uuid.New(), id, 1.0, "", completedAt).
				AddRow(uuid.New(), id, 0.5, "ran", completedAt))
		mock.ExpectExec(updateQuery).
			WithArgs(4.0, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		total, err := repo.RefreshCurrentValue(ctx, id, sumValues)
		assert.NoError(t, err)
		assert.Equal(t, 4.0, total)
	})
	t.Run("no check-ins", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectQuery(checkInsQuery).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(checkInColumns))
		mock.ExpectExec(updateQuery).
			WithArgs(0.0, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		total, err := repo.RefreshCurrentValue(ctx, id, sumValues)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})
	t.Run("goal deleted", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()
		_, err := repo.RefreshCurrentValue(ctx, id, sumValues)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("update error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectQuery(checkInsQuery).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(checkInColumns).AddRow(uuid.New(), id, 1.0, "", completedAt))
		mock.ExpectExec(updateQuery).
			WithArgs(1.0, id).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.RefreshCurrentValue(ctx, id, sumValues)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalsIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	pool := repository.NewPool(cfg)
	goalsRepo := repository.NewGoalsRepoWithConn(pool)
	checkInsRepo := repository.NewCheckInsRepoWithConn(pool)
	ctx := context.Background()

	var goal *entity.Goal
	t.Run("create", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			created, err := goalsRepo.Create(ctx, &entity.Goal{
				Title:        "Run 100 km",
				Category:     entity.CategoryHabits,
				Frequency:    entity.FrequencyWeekly,
				TargetValue:  100,
				CurrentValue: 55,
			})
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, 0.0, created.CurrentValue)
			goal = created
		})
		t.Run("non-positive target", func(t *testing.T) {
			_, err := goalsRepo.Create(ctx, &entity.Goal{
				Title:       "broken",
				Category:    entity.CategoryHabits,
				Frequency:   entity.FrequencyWeekly,
				TargetValue: 0,
			})
			assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
		})
	})
	t.Run("get by id", func(t *testing.T) {
		result, err := goalsRepo.GetByID(ctx, goal.ID)
		assert.NoError(t, err)
		assert.Equal(t, goal.Title, result.Title)
		_, err = goalsRepo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("update keeps current value", func(t *testing.T) {
		changed := *goal
		changed.Title = "Run 150 km"
		changed.TargetValue = 150
		changed.CurrentValue = 999
		result, err := goalsRepo.Update(ctx, &changed)
		assert.NoError(t, err)
		assert.Equal(t, "Run 150 km", result.Title)
		assert.Equal(t, 150.0, result.TargetValue)
		assert.Equal(t, 0.0, result.CurrentValue)
	})
	t.Run("concurrent refreshes keep the ledger sum", func(t *testing.T) {
		const appends = 20
		wg := sync.WaitGroup{}
		for i := range appends {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := checkInsRepo.Create(ctx, &entity.CheckIn{
					GoalID:      goal.ID,
					Value:       float64(i + 1),
					CompletedAt: time.Now(),
				})
				assert.NoError(t, err)
				_, err = goalsRepo.RefreshCurrentValue(ctx, goal.ID, sumValues)
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()
		result, err := goalsRepo.GetByID(ctx, goal.ID)
		assert.NoError(t, err)
		assert.Equal(t, float64(appends*(appends+1)/2), result.CurrentValue)
	})
	t.Run("list", func(t *testing.T) {
		second, err := goalsRepo.Create(ctx, &entity.Goal{
			Title:       "Emergency fund",
			Category:    entity.CategoryFinances,
			Frequency:   entity.FrequencyMonthly,
			TargetValue: 5000,
		})
		require.NoError(t, err)
		result, err := goalsRepo.List(ctx)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, goal.ID, result[0].ID)
		assert.Equal(t, second.ID, result[1].ID)
	})
	t.Run("delete cascades to check-ins", func(t *testing.T) {
		err := goalsRepo.Delete(ctx, goal.ID)
		assert.NoError(t, err)
		checkIns, err := checkInsRepo.ListByGoal(ctx, goal.ID)
		assert.NoError(t, err)
		assert.Empty(t, checkIns)
		err = goalsRepo.Delete(ctx, goal.ID)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
		_, err = goalsRepo.RefreshCurrentValue(ctx, goal.ID, sumValues)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}
