package middleware

import (
	"errors"
	"testing"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"app error", NewAppError(fiber.StatusNotFound, "Job not found", nil, nil), fiber.StatusNotFound, "Job not found"},
		{"app error default message", NewAppError(fiber.StatusForbidden, "", nil, nil), fiber.StatusForbidden, response.MessageForbidden},
		{"wrapped app error", errors.Join(errors.New("ctx"), NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)), fiber.StatusBadRequest, "Bad request"},
		{"masked 5xx", NewAppError(fiber.StatusInternalServerError, "db password wrong", nil, nil), fiber.StatusInternalServerError, response.MessageInternalServerError},
		{"fiber 503", fiber.ErrServiceUnavailable, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable},
		{"fiber 404", fiber.ErrNotFound, fiber.StatusNotFound, "Not Found"},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError, response.MessageInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := normalizeError(tc.err)
			if status != tc.status || msg != tc.msg {
				t.Fatalf("expected %d %q, got %d %q", tc.status, tc.msg, status, msg)
			}
		})
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer   ", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		token, ok := bearerTokenFromHeader(tc.header)
		if token != tc.token || ok != tc.ok {
			t.Fatalf("header %q: expected (%q, %v), got (%q, %v)", tc.header, tc.token, tc.ok, token, ok)
		}
	}
}
