package middleware

import (
	"errors"
	"strings"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}

// RequireRole rejects callers whose role is not listed. It must run after
// the auth middleware.
func RequireRole(roles ...jwt.Role) fiber.Handler {
	allowed := make(map[jwt.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(CtxRoleKey).(jwt.Role)
		if _, ok := allowed[role]; !ok {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}

func UserIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func RoleFromCtx(c fiber.Ctx) jwt.Role {
	r, _ := c.Locals(CtxRoleKey).(jwt.Role)
	return r
}

// bearerToken reads the Authorization header. Browsers cannot set headers on
// websocket upgrades, so an access_token query parameter is accepted too.
func bearerToken(c fiber.Ctx) (string, bool) {
	if token, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
		return token, true
	}
	token := strings.TrimSpace(c.Query("access_token"))
	return token, token != ""
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
