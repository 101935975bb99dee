package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/config"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/middleware"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/routes"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/scheduler"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
	Refresher *scheduler.Refresher
}

func New(baseCtx context.Context, c *Container, hub *ws.Hub) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	routes.NewRegistry(routes.Deps{
		DB:          c.DB,
		Cache:       c.Cache,
		JWT:         c.JWT,
		Eligibility: c.Eligibility,
		Hub:         hub,
		BaseCtx:     baseCtx,
		Logger:      c.Logger,
	}).Register(f)

	return &App{Fiber: f, Container: c, Hub: hub}
}

// Bootstrap builds the HTTP app and starts the background workers. The
// returned cleanup stops them and releases the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(log.Writer(), "", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithCancel(context.Background())

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	a := New(ctx, c, hub)

	a.Refresher = scheduler.NewRefresher(cfg.Eligibility.RefreshSpec, c.Eligibility, hub, logger)
	if err := a.Refresher.Start(ctx); err != nil {
		cancel()
		_ = c.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		cancel()
		a.Refresher.Stop()
		return c.Close()
	}
	return a, cleanup, nil
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
