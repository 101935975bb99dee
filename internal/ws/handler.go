package ws

import (
	"context"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub       *Hub
	estimator Estimator
	baseCtx   context.Context
	logger    *log.Logger
}

// NewHandler serves live estimates. baseCtx bounds every connection's
// lifetime, so cancelling it on shutdown stops all estimators.
func NewHandler(baseCtx context.Context, hub *Hub, estimator Estimator, logger *log.Logger) *Handler {
	return &Handler{hub: hub, estimator: estimator, baseCtx: baseCtx, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RegisterRoutes mounts the estimate socket behind auth, which should accept
// the access_token query parameter.
func (h *Handler) RegisterRoutes(r fiber.Router, auth fiber.Handler, roles fiber.Handler) {
	if r == nil {
		return
	}
	r.Get("/ws/jobs/eligibility/estimate", auth, roles, h.HandleEstimateWS)
}

func (h *Handler) HandleEstimateWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.estimator == nil {
		return fiber.ErrServiceUnavailable
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("[WS] upgrade error: %v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, h.estimator, h.logger)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump(h.baseCtx)
	})(c)
}
