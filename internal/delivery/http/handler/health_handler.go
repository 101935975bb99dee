package handler

import (
	"context"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the database as required and the cache as optional.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.Map{"database": "up", "cache": "up"}
	code := fiber.StatusOK
	if h.db == nil || h.db.Ping(ctx) != nil {
		status["database"] = "down"
		code = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		status["cache"] = "bypassed"
	}

	if code != fiber.StatusOK {
		return response.Error(c, code, "unhealthy", status)
	}
	return response.Success(c, code, response.MessageOK, status)
}
