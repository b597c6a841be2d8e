package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thexempt/internal/config"
	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/static"
	"go.uber.org/zap"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTimeout   = 30 * time.Minute
)

type App struct {
	Fiber *fiber.App
}

// New builds the fiber app around an already wired container.
func New(cfg config.Config, logger *zap.Logger, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)

	var apiLimiter fiber.Handler
	if c.APILimiter != nil {
		apiLimiter = c.APILimiter.Middleware()
	}
	routes.NewRegistry(c.Health, apiLimiter, c.Handlers).Register(f)

	registerStatic(f, cfg.App.StaticDir)

	return &App{Fiber: f}
}

// Bootstrap wires every dependency, starts the background workers and returns
// the app with a cleanup function that stops them.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go c.Hub.Run(ctx)

	stop := make(chan struct{})
	c.AuthLimiter.StartSweeper(limiterSweepInterval, limiterIdleTimeout, stop)
	c.APILimiter.StartSweeper(limiterSweepInterval, limiterIdleTimeout, stop)

	app := New(cfg, logger, c)

	cleanup := func() error {
		close(stop)
		cancel()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger.Named("http"))
	errMw := middleware.NewErrorMiddleware(logger.Named("http"))

	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
	app.Use(cors.New())
}

// registerStatic serves the web client from dir at /. It is registered after
// the API so API routes take precedence.
func registerStatic(app *fiber.App, dir string) {
	dir = strings.TrimSpace(dir)
	if app == nil || dir == "" {
		return
	}
	app.Get("/*", static.New(dir))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
