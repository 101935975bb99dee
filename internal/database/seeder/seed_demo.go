package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company_name", "status", "eligibility", "required_skills"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, j := range demoJobs() {
			elig, err := json.Marshal(j.Eligibility)
			if err != nil {
				return fmt.Errorf("encode eligibility for %s: %w", j.Title, err)
			}
			skills, err := json.Marshal(j.RequiredSkills)
			if err != nil {
				return fmt.Errorf("encode required skills for %s: %w", j.Title, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO jobs (id, title, company_name, status, eligibility, required_skills)
				 VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb)
				 ON CONFLICT (id) DO NOTHING`,
				j.ID, j.Title, j.CompanyName, string(j.Status), string(elig), string(skills),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type StudentsSeeder struct {
	Now func() time.Time
}

func (StudentsSeeder) Name() string { return "student_profiles" }

func (s StudentsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "student_profiles",
		"id", "user_id", "technical_skills", "english_proficiency", "current_school", "profile_status", "approved_at",
	); err != nil {
		return err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, p := range demoStudents(now().UTC()) {
			enc := map[string]any{
				"technical_skills":    orEmpty(p.TechnicalSkills),
				"soft_skills":         orEmpty(p.SoftSkills),
				"office_skills":       orEmpty(p.OfficeSkills),
				"english_proficiency": p.English,
				"tenth_grade":         p.TenthGrade,
				"twelfth_grade":       p.TwelfthGrade,
				"higher_education":    orEmpty(p.HigherEducation),
				"certifications":      orEmpty(p.Certifications),
			}
			cols := make(map[string]string, len(enc))
			for col, v := range enc {
				b, err := jsonColumn(v)
				if err != nil {
					return fmt.Errorf("encode %s for %s: %w", col, p.Name, err)
				}
				cols[col] = b
			}

			if _, err := tx.Exec(ctx,
				`INSERT INTO student_profiles (
					id, user_id, name,
					technical_skills, soft_skills, office_skills, english_proficiency,
					tenth_grade, twelfth_grade, higher_education,
					current_school, current_module, campus, gender,
					attendance_percentage, months_at_institution, certifications,
					profile_status, approved_at
				 ) VALUES (
					$1, $2, $3,
					$4::jsonb, $5::jsonb, $6::jsonb, $7::jsonb,
					$8::jsonb, $9::jsonb, $10::jsonb,
					$11, $12, $13, $14,
					$15, $16, $17::jsonb,
					$18, $19
				 )
				 ON CONFLICT (user_id) DO NOTHING`,
				p.ID, p.UserID, p.Name,
				cols["technical_skills"], cols["soft_skills"], cols["office_skills"], cols["english_proficiency"],
				nullableJSON(cols["tenth_grade"]), nullableJSON(cols["twelfth_grade"]), cols["higher_education"],
				p.CurrentSchool, p.CurrentModule, p.Campus, p.Gender,
				p.AttendancePercentage, p.MonthsAtInstitution, cols["certifications"],
				string(p.Status), p.ApprovedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type ApplicationsSeeder struct{}

func (ApplicationsSeeder) Name() string { return "applications" }

func (ApplicationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "applications", "job_id", "student_id", "status"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, a := range demoApplications {
			if _, err := tx.Exec(ctx,
				`INSERT INTO applications (job_id, student_id, status)
				 VALUES ($1, $2, 'applied')
				 ON CONFLICT (job_id, student_id) DO NOTHING`,
				a.job, demoStudentID(a.student),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// orEmpty keeps NOT NULL array columns from being written as JSON null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func jsonColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nullableJSON(s string) any {
	if s == "null" {
		return nil
	}
	return s
}
