package repository

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"

	"github.com/google/uuid"
)

type StudentRepository interface {
	ListActive(ctx context.Context) ([]student.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (student.Profile, error)
}

type PostgresStudentRepository struct {
	db database.DB
}

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

const studentColumns = `id, user_id, name,
	technical_skills, soft_skills, office_skills, english_proficiency,
	tenth_grade, twelfth_grade, higher_education,
	current_school, current_module, campus, gender,
	attendance_percentage, months_at_institution, certifications,
	profile_status, approved_at, updated_at`

// ListActive returns every active student profile ordered by name.
func (r *PostgresStudentRepository) ListActive(ctx context.Context) ([]student.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM student_profiles
		 WHERE is_active = TRUE
		 ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]student.Profile, 0)
	for rows.Next() {
		p, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStudentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (student.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM student_profiles
		 WHERE user_id = $1`,
		userID,
	)
	p, err := scanStudent(row)
	if err != nil {
		if isNoRows(err) {
			return student.Profile{}, student.ErrNotFound
		}
		return student.Profile{}, err
	}
	return p, nil
}

func scanStudent(row database.Row) (student.Profile, error) {
	var (
		p                                student.Profile
		technical, soft, office, english []byte
		tenth, twelfth, higher, certs    []byte
		status                           string
	)
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Name,
		&technical, &soft, &office, &english,
		&tenth, &twelfth, &higher,
		&p.CurrentSchool, &p.CurrentModule, &p.Campus, &p.Gender,
		&p.AttendancePercentage, &p.MonthsAtInstitution, &certs,
		&status, &p.ApprovedAt, &p.UpdatedAt,
	); err != nil {
		return student.Profile{}, err
	}
	p.Status = student.ProfileStatus(status)

	columns := []struct {
		name string
		raw  []byte
		out  any
	}{
		{"technical_skills", technical, &p.TechnicalSkills},
		{"soft_skills", soft, &p.SoftSkills},
		{"office_skills", office, &p.OfficeSkills},
		{"english_proficiency", english, &p.English},
		{"tenth_grade", tenth, &p.TenthGrade},
		{"twelfth_grade", twelfth, &p.TwelfthGrade},
		{"higher_education", higher, &p.HigherEducation},
		{"certifications", certs, &p.Certifications},
	}
	for _, c := range columns {
		if err := decodeJSON(c.raw, "student_profiles."+c.name, c.out); err != nil {
			return student.Profile{}, err
		}
	}
	return p, nil
}
