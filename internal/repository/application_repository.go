package repository

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	IndexByJobID(ctx context.Context, jobID uuid.UUID) (*application.Index, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// IndexByJobID loads every application to jobID into a lookup index.
func (r *PostgresApplicationRepository) IndexByJobID(ctx context.Context, jobID uuid.UUID) (*application.Index, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, student_id, status, applied_at
		 FROM applications
		 WHERE job_id = $1`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.StudentID, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return application.NewIndex(apps), nil
}
