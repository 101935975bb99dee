package job

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

type Job struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	CompanyName    string          `json:"company_name"`
	Status         Status          `json:"status"`
	Eligibility    Eligibility     `json:"eligibility"`
	RequiredSkills []RequiredSkill `json:"required_skills"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type GradeRequirement struct {
	Required      bool     `json:"required"`
	MinPercentage *float64 `json:"min_percentage"`
}

// Enabled reports whether the requirement restricts anyone.
func (g GradeRequirement) Enabled() bool {
	return g.Required || g.MinPercentage != nil
}

type HigherEducationRequirement struct {
	Required        bool     `json:"required"`
	AcceptedDegrees []string `json:"accepted_degrees"`
}

func (h HigherEducationRequirement) Enabled() bool {
	return h.Required || len(nonBlank(h.AcceptedDegrees)) > 0
}

// Eligibility is the set of independent, optionally enabled constraints
// attached to a job. Zero value means open for all.
type Eligibility struct {
	TenthGrade             GradeRequirement           `json:"tenth_grade"`
	TwelfthGrade           GradeRequirement           `json:"twelfth_grade"`
	HigherEducation        HigherEducationRequirement `json:"higher_education"`
	Schools                []string                   `json:"schools"`
	Campuses               []string                   `json:"campuses"`
	MinModule              string                     `json:"min_module"`
	Certifications         []string                   `json:"certifications"`
	EnglishWriting         string                     `json:"english_writing"`
	EnglishSpeaking        string                     `json:"english_speaking"`
	FemaleOnly             bool                       `json:"female_only"`
	MinAttendance          *float64                   `json:"min_attendance"`
	MinMonthsAtInstitution *float64                   `json:"min_months_at_institution"`
	ShortlistDeadline      *time.Time                 `json:"shortlist_deadline"`
}

func (e Eligibility) SchoolList() []string        { return nonBlank(e.Schools) }
func (e Eligibility) CampusList() []string        { return nonBlank(e.Campuses) }
func (e Eligibility) CertificationList() []string { return nonBlank(e.Certifications) }

// ModuleRequirementApplies is true only when a module is named and exactly one
// school is selected. With several schools the module filter is skipped.
func (e Eligibility) ModuleRequirementApplies() bool {
	return strings.TrimSpace(e.MinModule) != "" && len(e.SchoolList()) == 1
}

// OpenForAll is derived from the constraints; it is never stored.
// English writing and speaking levels are not counted: they only weigh on
// the match score and never gate a student.
func (e Eligibility) OpenForAll() bool {
	switch {
	case e.TenthGrade.Enabled(), e.TwelfthGrade.Enabled(), e.HigherEducation.Enabled():
		return false
	case len(e.SchoolList()) > 0, len(e.CampusList()) > 0, e.ModuleRequirementApplies():
		return false
	case e.FemaleOnly, e.MinAttendance != nil, e.MinMonthsAtInstitution != nil:
		return false
	case len(e.CertificationList()) > 0, e.ShortlistDeadline != nil:
		return false
	}
	return true
}

type RequiredSkill struct {
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel int       `json:"proficiency_level"`
	Required         bool      `json:"required"`
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
