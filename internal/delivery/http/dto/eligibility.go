package dto

import (
	"fmt"
	"strings"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/eligibility"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"

	"github.com/google/uuid"
)

// JobDraftRequest is an unsaved job as edited in the authoring form.
type JobDraftRequest struct {
	Title          string              `json:"title"`
	CompanyName    string              `json:"company_name"`
	Eligibility    job.Eligibility     `json:"eligibility"`
	RequiredSkills []job.RequiredSkill `json:"required_skills"`
}

func (r JobDraftRequest) Validate() error {
	for i, s := range r.RequiredSkills {
		if s.SkillID == uuid.Nil {
			return fmt.Errorf("required_skills[%d]: skill_id is required", i)
		}
		if s.ProficiencyLevel < 0 || s.ProficiencyLevel > eligibility.MaxSelfRating {
			return fmt.Errorf("required_skills[%d]: proficiency_level must be between 0 and %d", i, eligibility.MaxSelfRating)
		}
	}
	for _, p := range []*float64{
		r.Eligibility.TenthGrade.MinPercentage,
		r.Eligibility.TwelfthGrade.MinPercentage,
		r.Eligibility.MinAttendance,
	} {
		if p != nil && (*p < 0 || *p > 100) {
			return fmt.Errorf("percentages must be between 0 and 100")
		}
	}
	if m := r.Eligibility.MinMonthsAtInstitution; m != nil && *m < 0 {
		return fmt.Errorf("min_months_at_institution must not be negative")
	}
	return nil
}

func (r JobDraftRequest) ToJob() job.Job {
	return job.Job{
		Title:          strings.TrimSpace(r.Title),
		CompanyName:    strings.TrimSpace(r.CompanyName),
		Status:         job.StatusDraft,
		Eligibility:    r.Eligibility,
		RequiredSkills: r.RequiredSkills,
	}
}

type EstimateResponse struct {
	Eligible   int  `json:"eligible"`
	Total      int  `json:"total"`
	OpenForAll bool `json:"open_for_all"`
}

type StudentEligibilityResponse struct {
	JobID        uuid.UUID            `json:"job_id"`
	Eligible     bool                 `json:"eligible"`
	CanApply     bool                 `json:"can_apply"`
	FailedReason *eligibility.Failure `json:"failed_reason,omitempty"`
	Match        *eligibility.Match   `json:"match,omitempty"`
}

func NewStudentEligibilityResponse(jobID uuid.UUID, res eligibility.StudentResult) StudentEligibilityResponse {
	return StudentEligibilityResponse{
		JobID:        jobID,
		Eligible:     res.Eligible,
		CanApply:     res.Eligible,
		FailedReason: eligibility.FailureOf(res.FailedReason),
		Match:        res.Match,
	}
}

type EligibleStudentsResponse struct {
	JobID             uuid.UUID                   `json:"job_id"`
	Total             int                         `json:"total"`
	Eligible          int                         `json:"eligible"`
	Applied           int                         `json:"applied"`
	NotApplied        int                         `json:"not_applied"`
	AppliedIneligible int                         `json:"applied_ineligible"`
	Students          []eligibility.StudentRecord `json:"students"`
}

func NewEligibleStudentsResponse(jobID uuid.UUID, res eligibility.AggregateResult) EligibleStudentsResponse {
	students := res.Students
	if students == nil {
		students = []eligibility.StudentRecord{}
	}
	return EligibleStudentsResponse{
		JobID:             jobID,
		Total:             res.Total,
		Eligible:          res.Eligible,
		Applied:           res.Applied,
		NotApplied:        res.NotApplied,
		AppliedIneligible: res.AppliedIneligible,
		Students:          students,
	}
}
