package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/pkg/entity"
	"github.com/limbo/lifeflow/pkg/httputil"
)

const (
	requestTimeout      = 10 * time.Second
	coachRequestTimeout = 60 * time.Second
)

type ListGoalsResponse struct {
	Goals []*entity.Goal `json:"goals"`
}

type ListCheckInsResponse struct {
	GoalID   string           `json:"goal_id"`
	CheckIns []entity.CheckIn `json:"check_ins"`
}

type ListAllCheckInsResponse struct {
	CheckIns []entity.CheckIn `json:"check_ins"`
}

type CategoryProgressResponse struct {
	Categories []entity.CategoryProgress `json:"categories"`
}

// writeServiceError maps service errors to status codes.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrGoalNotFound):
		logger.Error(op + " error: unexist goal")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrInvalidInput):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func goalIDFromPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateGoalRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.String("goal_id", goal.ID.String()))
}

func (s *Server) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goals, err := s.goalsService.ListGoals(ctx)
	if err != nil {
		writeServiceError(w, logger, "list goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListGoalsResponse{Goals: goals})
	logger.Info("goals provided")
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := goalIDFromPath(w, r, logger, "get goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.GetGoal(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal provided")
}

func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := goalIDFromPath(w, r, logger, "update goal")
	if !ok {
		return
	}
	var req service.UpdateGoalRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.UpdateGoal(ctx, id, &req)
	if err != nil {
		writeServiceError(w, logger, "update goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal updated", slog.String("goal_id", id.String()))
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := goalIDFromPath(w, r, logger, "delete goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err := s.goalsService.DeleteGoal(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goal deleted", slog.String("goal_id", id.String()))
}

func (s *Server) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	goalID, ok := goalIDFromPath(w, r, logger, "create check-in")
	if !ok {
		return
	}
	var req service.CreateCheckInRequest
	defer r.Body.Close()
	// Body is optional: an empty one is a check-in worth 1.
	if err := httputil.ReadJSON(r.Body, &req); err != nil {
		logger.Error("create check-in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	checkIn, err := s.checkInsService.CreateCheckIn(ctx, goalID, &req)
	if err != nil {
		writeServiceError(w, logger, "create check-in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, checkIn)
	logger.Info("check-in created", slog.String("goal_id", goalID.String()), slog.Float64("value", checkIn.Value))
}

func (s *Server) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	goalID, ok := goalIDFromPath(w, r, logger, "list check-ins")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	checkIns, err := s.checkInsService.ListCheckIns(ctx, goalID)
	if err != nil {
		writeServiceError(w, logger, "list check-ins", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListCheckInsResponse{
		GoalID:   goalID.String(),
		CheckIns: checkIns,
	})
	logger.Info("check-ins provided")
}

func (s *Server) ListAllCheckIns(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	checkIns, err := s.checkInsService.ListAllCheckIns(ctx)
	if err != nil {
		writeServiceError(w, logger, "list all check-ins", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListAllCheckInsResponse{CheckIns: checkIns})
	logger.Info("all check-ins provided")
}

func (s *Server) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	goalID, ok := goalIDFromPath(w, r, logger, "get goal progress")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	progress, err := s.goalsService.GetGoalProgress(ctx, goalID)
	if err != nil {
		writeServiceError(w, logger, "get goal progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("goal progress provided")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	state, err := s.streakService.GetStreak(ctx)
	if err != nil {
		writeServiceError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
	logger.Info("streak provided")
}

func (s *Server) GetCategoryProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	categories, err := s.goalsService.GetCategoryProgress(ctx)
	if err != nil {
		writeServiceError(w, logger, "get category progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CategoryProgressResponse{Categories: categories})
	logger.Info("category progress provided")
}

func (s *Server) GetInsightsSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	summary, err := s.insightsService.GetSummary(ctx)
	if err != nil {
		writeServiceError(w, logger, "get insights summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("insights summary provided")
}

func (s *Server) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), coachRequestTimeout)
	defer cancel()
	report, err := s.insightsService.GenerateInsights(ctx)
	if err != nil {
		writeServiceError(w, logger, "generate insights", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("insights generated", slog.Bool("degraded", report.Degraded))
}

func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.ChatRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("chat error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), coachRequestTimeout)
	defer cancel()
	reply, err := s.insightsService.Chat(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "chat", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reply)
	logger.Info("chat answered", slog.Bool("degraded", reply.Degraded))
}
