package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"scratch_backend/internal/config"
	"scratch_backend/internal/config/env"
	"scratch_backend/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
	envFile         string
}

func NewApp(envFile string) *App {
	return &App{envFile: envFile}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) initLogger() {
	cfg, err := env.NewLogConfig()
	if err != nil {
		panic("failed to get log config: " + err.Error())
	}
	logger.Init(&logger.Options{Level: logger.ParseLevel(cfg.Level())})
}

// Run поднимает HTTP сервер и блокируется до отмены ctx
func (s *App) Run(ctx context.Context) error {
	err := config.Load(s.envFile)
	s.initLogger()
	if err != nil {
		logger.Warn("error loading .env file", "file", s.envFile, "error", err)
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	r := s.ServiceProvider.Router(ctx)

	sched, err := newScheduler(s.ServiceProvider.RateLimiter(), s.ServiceProvider.StatsRepository())
	if err != nil {
		return err
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			logger.Warn("scheduler shutdown failed", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
