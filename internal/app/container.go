package app

import (
	"context"
	"errors"
	"time"

	"thexempt/internal/config"
	"thexempt/internal/database"
	dbpostgres "thexempt/internal/database/postgres"
	"thexempt/internal/delivery/http/handler"
	"thexempt/internal/delivery/http/middleware"
	v1 "thexempt/internal/delivery/http/routes/v1"
	"thexempt/internal/infrastructure/cache"
	"thexempt/internal/infrastructure/persistence/postgres"
	"thexempt/internal/pkg/jwt"
	"thexempt/internal/repository"
	"thexempt/internal/usecase"
	"thexempt/internal/ws"

	"go.uber.org/zap"
)

// Container owns the long-lived dependencies of the server.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    *jwt.HMACService

	AuthLimiter *middleware.RateLimiter
	APILimiter  *middleware.RateLimiter

	Handlers v1.Handlers
	Health   *handler.HealthHandler
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger.Named("cache")),
		Hub:    ws.NewHub(logger.Named("ws")),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
	}
	c.wire()
	return c, nil
}

func (c *Container) wire() {
	cfg := c.Config
	log := c.Logger

	c.AuthLimiter = middleware.NewRateLimiter("auth", cfg.RateLimit.AuthMax, cfg.RateLimit.AuthWindow,
		"Too many authentication attempts, please try again later.", log.Named("ratelimit"))
	c.APILimiter = middleware.NewRateLimiter("api", cfg.RateLimit.APIMax, cfg.RateLimit.APIWindow,
		"Too many requests, please try again later.", log.Named("ratelimit"))

	users := postgres.NewUserRepository(c.DB)
	skills := repository.NewPostgresUserSkillRepository(c.DB)
	projects := repository.NewPostgresProjectRepository(c.DB)
	apps := repository.NewPostgresApplicationRepository(c.DB)
	contributions := repository.NewPostgresContributionRepository(c.DB)

	var projectCache usecase.ProjectCache
	if c.Cache != nil {
		projectCache = c.Cache
	}

	c.Handlers = v1.Handlers{
		Auth:      handler.NewAuthHandler(usecase.NewAuthUsecase(users, c.JWT)),
		User:      handler.NewUserHandler(usecase.NewUserUsecase(users)),
		UserSkill: handler.NewUserSkillHandler(usecase.NewUserSkillUsecase(skills)),
		Project:   handler.NewProjectHandler(usecase.NewProjectUsecase(projects, projectCache, log.Named("projects"))),
		Application: handler.NewApplicationHandler(
			usecase.NewApplicationUsecase(apps, projects, skills, c.Hub, log.Named("applications")),
		),
		Contribution: handler.NewContributionHandler(
			usecase.NewContributionUsecase(contributions, projects, c.Hub, log.Named("contribution")),
		),
		WS: ws.NewHandler(c.Hub, c.JWT, log.Named("ws")),

		RequireAuth: middleware.NewAuthMiddleware(c.JWT).Middleware(),
		AuthLimiter: c.AuthLimiter.Middleware(),
	}

	var cachePinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}
	c.Health = handler.NewHealthHandler(c.DB, cachePinger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
