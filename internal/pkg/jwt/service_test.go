package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, RoleCoordinator)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	c, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.UserID != userID || c.Role != RoleCoordinator {
		t.Fatalf("unexpected claims: %+v", c)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	issued := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateAccessToken(uuid.New(), RoleStudent)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("a", time.Minute).GenerateAccessToken(uuid.New(), RoleManager)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := NewHMACService("b", time.Minute).ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_RejectsUnknownRole(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	if _, err := svc.GenerateAccessToken(uuid.New(), Role("admin")); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("  Campus_POC "); !ok || r != RoleCampusPOC {
		t.Fatalf("expected campus_poc, got %q ok=%v", r, ok)
	}
	if _, ok := ParseRole("recruiter"); ok {
		t.Fatalf("expected unknown role to be rejected")
	}
}
