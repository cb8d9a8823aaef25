package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/config"
	"github.com/Abhijeet357/case-management/internal/api/handler"
	"github.com/Abhijeet357/case-management/internal/api/router"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/service"
	"github.com/Abhijeet357/case-management/pkg/database"
	"github.com/Abhijeet357/case-management/pkg/jwt"
	applogger "github.com/Abhijeet357/case-management/pkg/logger"
	"github.com/Abhijeet357/case-management/pkg/redis"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get underlying sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// Redis is optional: without it the token blacklist and dashboard
	// cache are disabled but the server still runs.
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, running without blacklist and cache", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// Background reconciliation keeps the pending-day counters of open
	// cases correct even when nobody touches them.
	reconcileCtx, stopReconcile := context.WithCancel(context.Background())
	go runReconciler(reconcileCtx, cfg.Workflow.ReconcileInterval, svc, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	stopReconcile()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}

// runReconciler recomputes day counters on startup and then on every
// tick until the context is cancelled.
func runReconciler(ctx context.Context, interval time.Duration, svc *service.Service, logger *zap.Logger) {
	reconcile := func() {
		n, err := svc.Case.ReconcileDayCounters(ctx, time.Now())
		if err != nil {
			logger.Error("day counter reconciliation failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("day counters reconciled", zap.Int("cases", n))
			svc.Dashboard.Invalidate(ctx)
		}
	}

	reconcile()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reconcile()
		}
	}
}
