package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EligibilityCache is satisfied by cache.Redis. Implementations must treat
// an unreachable backend as a miss rather than an error where possible.
type EligibilityCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateJob(ctx context.Context, jobID uuid.UUID) error
	TryLock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Unlock(ctx context.Context, key, token string) error
}
