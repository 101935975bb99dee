package student

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("student not found")

type ProfileStatus string

const (
	StatusDraft           ProfileStatus = "draft"
	StatusPendingApproval ProfileStatus = "pending_approval"
	StatusApproved        ProfileStatus = "approved"
	StatusNeedsRevision   ProfileStatus = "needs_revision"
)

type Skill struct {
	SkillID    uuid.UUID `json:"skill_id"`
	SkillName  string    `json:"skill_name"`
	SelfRating int       `json:"self_rating"`
}

type EnglishProficiency struct {
	Speaking string `json:"speaking"`
	Writing  string `json:"writing"`
}

type AcademicRecord struct {
	Percentage *float64 `json:"percentage"`
}

type Degree struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Percentage  *float64 `json:"percentage"`
}

type Profile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	TechnicalSkills []Skill            `json:"technical_skills"`
	SoftSkills      []Skill            `json:"soft_skills"`
	OfficeSkills    []Skill            `json:"office_skills"`
	English         EnglishProficiency `json:"english_proficiency"`

	TenthGrade      *AcademicRecord `json:"tenth_grade"`
	TwelfthGrade    *AcademicRecord `json:"twelfth_grade"`
	HigherEducation []Degree        `json:"higher_education"`

	CurrentSchool        string        `json:"current_school"`
	CurrentModule        string        `json:"current_module"`
	Campus               string        `json:"campus"`
	Gender               string        `json:"gender"`
	AttendancePercentage *float64      `json:"attendance_percentage"`
	MonthsAtInstitution  *float64      `json:"months_at_institution"`
	Certifications       []string      `json:"certifications"`
	Status               ProfileStatus `json:"profile_status"`
	ApprovedAt           *time.Time    `json:"approved_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// Skill finds a declared skill across the technical, soft and office arrays.
// When a skill is declared more than once the highest self-rating wins.
func (p Profile) Skill(id uuid.UUID) (Skill, bool) {
	var best Skill
	found := false
	if id == uuid.Nil {
		return best, false
	}
	for _, group := range [][]Skill{p.TechnicalSkills, p.SoftSkills, p.OfficeSkills} {
		for _, s := range group {
			if s.SkillID != id {
				continue
			}
			if !found || s.SelfRating > best.SelfRating {
				best = s
				found = true
			}
		}
	}
	return best, found
}
