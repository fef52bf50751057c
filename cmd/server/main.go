package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/agendago/backend/api/handler"
	"github.com/agendago/backend/internal/config"
	"github.com/agendago/backend/internal/infrastructure/monitor"
	"github.com/agendago/backend/internal/middleware"
	"github.com/agendago/backend/internal/router"
	"github.com/agendago/backend/internal/services"
	"github.com/agendago/backend/internal/services/lifecycle"
	"github.com/agendago/backend/pkg/httpcontext"
	"github.com/agendago/backend/pkg/logger"
	boltRepo "github.com/agendago/backend/repository/bolt"
	activityUC "github.com/agendago/backend/usecase/activity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	repo, err := boltRepo.Open(cfg.Storage.Path, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open activity storage", zap.Error(err))
	}
	manager.Register("storage", func(ctx context.Context) error {
		return repo.Close()
	})

	mon := monitor.New(repo, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	store := activityUC.New(repo, zapLogger)
	store.Load(appCtx)

	refresher := services.NewRefresher(store, zapLogger, services.RefresherConfig{
		Interval: cfg.Refresh.Interval,
	})
	refresher.Start()
	manager.Register("refresher", func(ctx context.Context) error {
		refresher.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Activity: apiHandler.NewActivityHandler(store, ctxAdapter, zapLogger),
		Insight:  apiHandler.NewInsightHandler(store, ctxAdapter, zapLogger),
		Backup:   apiHandler.NewBackupHandler(store, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)
	requestLogger := middleware.RequestLogger(zapLogger)

	server := &fasthttp.Server{
		Handler:      requestLogger(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
