// @title Lifeflow API
// @description API for goal tracking: check-ins, progress, streaks and coaching insights
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/limbo/lifeflow/internal/api"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/internal/service"
	coachclient "github.com/limbo/lifeflow/pkg/coach_client"
	"github.com/limbo/lifeflow/pkg/cleanup"
	"github.com/limbo/lifeflow/pkg/config"
	"github.com/limbo/lifeflow/pkg/logger"
)

func init() {
	service.InitValidator()
}

type repositories struct {
	goals    repository.GoalsRepositoryI
	checkIns repository.CheckInsRepositoryI
	streak   repository.StreakRepositoryI
}

func newRepositories(cfg *config.Config) repositories {
	storage := strings.ToLower(cfg.GetStringOr("STORAGE", "postgres"))
	if storage == "memory" {
		slog.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		return repositories{
			goals:    store.Goals(),
			checkIns: store.CheckIns(),
			streak:   store.Streak(),
		}
	}
	pool := repository.NewPool(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	})
	return repositories{
		goals:    repository.NewGoalsRepoWithConn(pool),
		checkIns: repository.NewCheckInsRepoWithConn(pool),
		streak:   repository.NewStreakRepoWithConn(pool),
	}
}

func newCoachClient(cfg *config.Config) service.CoachClient {
	url := cfg.GetString("COACH_API_URL")
	if url == "" {
		slog.Warn("COACH_API_URL is not set, coaching replies will be fallbacks")
		return nil
	}
	return coachclient.New(coachclient.Config{
		URL:             url,
		Secret:          cfg.GetString("COACH_API_SECRET"),
		ChatAgentID:     cfg.GetString("COACH_CHAT_AGENT_ID"),
		InsightsAgentID: cfg.GetString("COACH_INSIGHTS_AGENT_ID"),
		Timeout:         cfg.GetDuration("COACH_TIMEOUT", 0),
	})
}

func main() {
	cfg := config.New()
	logger.Init(cfg.GetString("APP_ENV") == "development", cfg.GetString("SENTRY_DSN"))

	repos := newRepositories(cfg)
	streakService := service.NewStreakService(repos.streak, cfg.GetLocation("STREAK_TIMEZONE"))
	progress := service.NewProgressAggregator(repos.goals)
	serv := api.New(&api.ServicesList{
		GoalsService:    service.NewGoalsService(repos.goals, repos.checkIns),
		CheckInsService: service.NewCheckInsService(repos.checkIns, progress, streakService, service.RealClock{}),
		StreakService:   streakService,
		InsightsService: service.NewInsightsService(repos.goals, newCoachClient(cfg)),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
