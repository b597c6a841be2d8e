package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thexempt/internal/app"
	"thexempt/internal/config"
	"thexempt/internal/database/migration"
	dbpostgres "thexempt/internal/database/postgres"
	"thexempt/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot, _ := logger.New(false, false)
		boot.Fatal("failed to load config", zap.Error(err))
	}

	log, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := migrate(cfg, log); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg, log)
	if err != nil {
		log.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
		}
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Warn("shutdown error", zap.Error(err))
		}
	}
}

// migrate brings the schema up to date before the server accepts traffic.
func migrate(cfg config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	r := migration.Runner{Dir: cfg.Migrations.Dir, Logger: log.Named("migrate")}
	return r.Run(ctx, db.SQLDB())
}
