package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
)

// CoerceValue turns a raw check-in value into a number. Finite numbers pass
// through unchanged, including 0 and negatives. Strings are parsed after
// trimming. Anything missing or unparsable counts as 1.
func CoerceValue(raw any) float64 {
	var v float64
	switch val := raw.(type) {
	case float64:
		v = val
	case float32:
		v = float64(val)
	case int:
		v = float64(val)
	case int64:
		v = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 1
		}
		v = parsed
	default:
		return 1
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	// An explicit 0 is a real value and stays 0, it is not replaced by 1.
	return v
}

// SumValues adds values in ascending order, so every permutation of the same
// multiset gives the same float result.
func SumValues(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	var total float64
	for _, v := range sorted {
		total += v
	}
	return total
}

// RecomputeCurrentValue is the sum of the values of the goal's check-ins.
func RecomputeCurrentValue(goalID uuid.UUID, checkIns []entity.CheckIn) float64 {
	values := make([]float64, 0, len(checkIns))
	for _, c := range checkIns {
		if c.GoalID == goalID {
			values = append(values, c.Value)
		}
	}
	return SumValues(values)
}

// CompletionPercentage is current/target as a percentage capped at 100.
// A non-positive target yields 0.
func CompletionPercentage(goal *entity.Goal) float64 {
	if !(goal.TargetValue > 0) {
		return 0
	}
	pct := goal.CurrentValue / goal.TargetValue * 100
	if math.IsNaN(pct) {
		return 0
	}
	return math.Max(0, math.Min(pct, 100))
}

// CompletionRate is CompletionPercentage rounded to a whole percent.
func CompletionRate(goal *entity.Goal) int {
	return int(math.Round(CompletionPercentage(goal)))
}

// CategoryProgress reports every category, including ones without goals.
func CategoryProgress(goals []*entity.Goal) []entity.CategoryProgress {
	result := make([]entity.CategoryProgress, 0, len(entity.Categories))
	for _, category := range entity.Categories {
		cp := entity.CategoryProgress{Category: category}
		var sum float64
		for _, g := range goals {
			if g.Category != category {
				continue
			}
			pct := CompletionPercentage(g)
			sum += pct
			cp.TotalGoals++
			if pct >= 100 {
				cp.CompletedGoals++
			}
		}
		if cp.TotalGoals > 0 {
			cp.Percentage = int(math.Round(sum / float64(cp.TotalGoals)))
		}
		result = append(result, cp)
	}
	return result
}

type ProgressAggregator struct {
	goalsRepo repository.GoalsRepositoryI
}

func NewProgressAggregator(goalsRepo repository.GoalsRepositoryI) *ProgressAggregator {
	return &ProgressAggregator{
		goalsRepo: goalsRepo,
	}
}

// Refresh stores the ledger sum as the goal's current value. A goal deleted
// in the meantime is skipped without error.
func (pa *ProgressAggregator) Refresh(ctx context.Context, goalID uuid.UUID) error {
	total, err := pa.goalsRepo.RefreshCurrentValue(ctx, goalID, RecomputeCurrentValue)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			slog.DebugContext(ctx, "goal vanished before progress refresh", slog.String("goal_id", goalID.String()))
			return nil
		}
		return errors.New("refreshing current value error: " + err.Error())
	}
	slog.DebugContext(ctx, "progress refreshed", slog.String("goal_id", goalID.String()), slog.Float64("current_value", total))
	return nil
}
