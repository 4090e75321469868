package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/lifeflow/internal/service"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx              *chi.Mux
	handler         http.Handler
	goalsService    service.GoalsServiceI
	checkInsService service.CheckInsServiceI
	streakService   service.StreakServiceI
	insightsService service.InsightsServiceI
}

type ServicesList struct {
	GoalsService    service.GoalsServiceI
	CheckInsService service.CheckInsServiceI
	StreakService   service.StreakServiceI
	InsightsService service.InsightsServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		goalsService:    servicesOptions.GoalsService,
		checkInsService: servicesOptions.CheckInsService,
		streakService:   servicesOptions.StreakService,
		insightsService: servicesOptions.InsightsService,
	}
	s.mountEndpoints()
	s.handler = otelhttp.NewHandler(s.mx, "lifeflow-api")
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/goals", func(r chi.Router) {
			r.Post("/", s.CreateGoal)
			r.Get("/", s.ListGoals)
			r.Get("/{id}", s.GetGoal)
			r.Patch("/{id}", s.UpdateGoal)
			r.Delete("/{id}", s.DeleteGoal)
			r.Post("/{id}/check-ins", s.CreateCheckIn)
			r.Get("/{id}/check-ins", s.ListCheckIns)
			r.Get("/{id}/progress", s.GetGoalProgress)
		})
		r.Get("/check-ins", s.ListAllCheckIns)
		r.Get("/streak", s.GetStreak)
		r.Get("/progress/categories", s.GetCategoryProgress)
		r.Get("/insights/summary", s.GetInsightsSummary)
		r.Post("/insights", s.GenerateInsights)
		r.Post("/chat", s.Chat)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down api server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
