package eligibility

import "github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"

type Verdict struct {
	Eligible     bool
	FailedReason HardCriterion
}

// Failure is the serializable form of a failed hard criterion.
type Failure struct {
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
}

func FailureOf(c HardCriterion) *Failure {
	if c == nil {
		return nil
	}
	return &Failure{Kind: c.Kind(), Description: c.Describe()}
}

// Evaluate walks the hard criteria in normalizer order and stops at the
// first one the student fails. No hard criteria means eligible.
func Evaluate(p student.Profile, c Criteria) Verdict {
	for _, hc := range c.Hard {
		if !hc.Satisfied(p) {
			return Verdict{Eligible: false, FailedReason: hc}
		}
	}
	return Verdict{Eligible: true}
}
