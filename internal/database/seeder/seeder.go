// Package seeder loads a small, deterministic demo dataset: a few jobs across
// the configured schools, a cohort of students and some applications.
package seeder

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
