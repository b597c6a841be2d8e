package main

import (
	"context"
	"flag"
	"time"

	"thexempt/internal/config"
	"thexempt/internal/database/migration"
	dbpostgres "thexempt/internal/database/postgres"
	"thexempt/internal/database/seeder"
	"thexempt/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "also insert demo users, skills and projects")
	dir := flag.String("dir", "", "migrations directory (overrides MIGRATIONS_DIR)")
	flag.Parse()

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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	migDir := cfg.Migrations.Dir
	if *dir != "" {
		migDir = *dir
	}

	r := migration.Runner{Dir: migDir, Logger: log.Named("migrate")}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	if !*seed {
		return
	}

	s := seeder.Runner{Seeders: seeder.Defaults()}
	if err := s.Run(ctx, db); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	log.Info("demo data seeded", zap.String("password", seeder.DemoPassword))
}
