package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"

	"github.com/google/uuid"
)

// Population summarises the rows an eligibility aggregate is computed from.
// Any profile write, activation change or new or withdrawn application for
// the job changes at least one field.
type Population struct {
	ActiveStudents    int64
	StudentsUpdatedAt time.Time
	Applications      int64
	LastAppliedAt     time.Time
}

func (p Population) Fingerprint() string {
	return strings.Join([]string{
		strconv.FormatInt(p.ActiveStudents, 10),
		p.StudentsUpdatedAt.UTC().Format(time.RFC3339Nano),
		strconv.FormatInt(p.Applications, 10),
		p.LastAppliedAt.UTC().Format(time.RFC3339Nano),
	}, "|")
}

type PopulationRepository interface {
	ForJob(ctx context.Context, jobID uuid.UUID) (Population, error)
}

type PostgresPopulationRepository struct {
	db database.DB
}

func NewPostgresPopulationRepository(db database.DB) *PostgresPopulationRepository {
	return &PostgresPopulationRepository{db: db}
}

func (r *PostgresPopulationRepository) ForJob(ctx context.Context, jobID uuid.UUID) (Population, error) {
	var p Population
	row := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM student_profiles WHERE is_active = TRUE),
			(SELECT COALESCE(MAX(updated_at), 'epoch'::timestamptz) FROM student_profiles),
			(SELECT COUNT(*) FROM applications WHERE job_id = $1),
			(SELECT COALESCE(MAX(applied_at), 'epoch'::timestamptz) FROM applications WHERE job_id = $1)`,
		jobID,
	)
	if err := row.Scan(&p.ActiveStudents, &p.StudentsUpdatedAt, &p.Applications, &p.LastAppliedAt); err != nil {
		return Population{}, err
	}
	return p, nil
}
