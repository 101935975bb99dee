package middleware

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil {
			var appErr *AppError
			switch {
			case errors.As(err, &appErr):
				status = appErr.StatusCode
			default:
				status = fiber.StatusInternalServerError
			}
		}

		role := RoleFromCtx(c)
		if role == "" {
			role = "-"
		}

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] rid=%s ip=%s role=%s method=%s path=%s status=%d latency=%s resp_bytes=%d",
				rid, c.IP(), role, c.Method(), c.OriginalURL(), status, dur, len(c.Response().Body()),
			)
		}

		return err
	}
}
