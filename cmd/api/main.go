// Package main is the entry point for the inventory API server. It loads
// configuration, connects MySQL and Redis, runs pending migrations, starts
// the audit dispatcher, and serves HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ims-platform/inventory-system/internal/api"
	"github.com/ims-platform/inventory-system/internal/core/service"
	"github.com/ims-platform/inventory-system/internal/infrastructure/config"
	"github.com/ims-platform/inventory-system/internal/infrastructure/db/mysql"
	redisdb "github.com/ims-platform/inventory-system/internal/infrastructure/db/redis"
	"github.com/ims-platform/inventory-system/internal/infrastructure/queue"
	"github.com/ims-platform/inventory-system/pkg/logger"
)

// @title        Inventory Management API
// @version      1.0
// @description  Role-gated REST API for inventory and order management.
// @BasePath     /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting inventory-api")

	// --- MySQL ---
	db, err := mysql.Connect(ctx, mysql.Config{DSN: cfg.MySQL.DSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()
	log.Info().Str("host", cfg.MySQL.Host).Msg("connected to mysql")

	if err := mysql.RunMigrations(db, cfg.MigrationsDir, log); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Audit dispatcher ---
	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	defer stopDispatcher()

	auditService := service.NewAuditService(mysql.NewOrderEventRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(dispatcherCtx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, log, dispatcher)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down")

		// Give in-flight requests 10 seconds to drain before the audit
		// workers stop.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("forced shutdown")
		}
		stopDispatcher()
	}()

	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
	log.Info().Msg("server stopped")
}
