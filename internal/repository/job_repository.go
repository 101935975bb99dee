package repository

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository interface {
	FindByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListOpenIDs(ctx context.Context) ([]uuid.UUID, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, company_name, status, eligibility, required_skills, created_at, updated_at
		 FROM jobs
		 WHERE id = $1`,
		jobID,
	)
	j, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

// ListOpenIDs returns the ids of jobs currently accepting applications.
func (r *PostgresJobRepository) ListOpenIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM jobs WHERE status = $1 ORDER BY updated_at DESC`,
		string(job.StatusActive),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j           job.Job
		status      string
		eligibility []byte
		skills      []byte
	)
	if err := row.Scan(&j.ID, &j.Title, &j.CompanyName, &status, &eligibility, &skills, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	if err := decodeJSON(eligibility, "jobs.eligibility", &j.Eligibility); err != nil {
		return job.Job{}, err
	}
	if err := decodeJSON(skills, "jobs.required_skills", &j.RequiredSkills); err != nil {
		return job.Job{}, err
	}
	return j, nil
}
