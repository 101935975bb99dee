package routes

import (
	"context"
	"log"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/handler"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/middleware"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/jwt"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	DB          handler.Pinger
	Cache       handler.Pinger
	JWT         jwt.Service
	Eligibility usecase.EligibilityUsecase
	Hub         *ws.Hub
	BaseCtx     context.Context
	Logger      *log.Logger
}

type Registry struct {
	health      *handler.HealthHandler
	eligibility *handler.EligibilityHandler
	ws          *ws.Handler
	auth        *middleware.AuthMiddleware
}

func NewRegistry(d Deps) *Registry {
	baseCtx := d.BaseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Registry{
		health:      handler.NewHealthHandler(d.DB, d.Cache),
		eligibility: handler.NewEligibilityHandler(d.Eligibility),
		ws:          ws.NewHandler(baseCtx, d.Hub, d.Eligibility, d.Logger),
		auth:        middleware.NewAuthMiddleware(d.JWT),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerV1(app.Group("/api/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	authMw := r.auth.Middleware()

	r.ws.RegisterRoutes(v1, authMw, middleware.RequireRole(jwt.RoleCoordinator, jwt.RoleManager, jwt.RoleCampusPOC))

	protected := v1.Group("", authMw)
	r.eligibility.RegisterRoutes(protected)
}
