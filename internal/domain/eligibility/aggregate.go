package eligibility

import (
	"context"
	"sort"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/application"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/workerpool"

	"github.com/google/uuid"
)

// ApplicationLookup resolves (student, job) pairs to applications.
type ApplicationLookup interface {
	Lookup(studentID, jobID uuid.UUID) (application.Application, bool)
}

type StudentRecord struct {
	StudentID         uuid.UUID     `json:"student_id"`
	Name              string        `json:"name"`
	Eligible          bool          `json:"eligible"`
	FailedReason      *Failure      `json:"failed_reason,omitempty"`
	MatchPercentage   *int          `json:"match_percentage,omitempty"`
	Details           []MatchDetail `json:"details,omitempty"`
	HasApplied        bool          `json:"has_applied"`
	ApplicationStatus string        `json:"application_status,omitempty"`
}

// AggregateResult summarises a job against a student population. Applied and
// NotApplied partition the eligible students; AppliedIneligible counts
// applicants who no longer pass.
type AggregateResult struct {
	Total             int             `json:"total"`
	Eligible          int             `json:"eligible"`
	Applied           int             `json:"applied"`
	NotApplied        int             `json:"not_applied"`
	AppliedIneligible int             `json:"applied_ineligible"`
	Students          []StudentRecord `json:"students"`
}

func evaluateRecord(j job.Job, c Criteria, p student.Profile, apps ApplicationLookup) StudentRecord {
	rec := StudentRecord{StudentID: p.ID, Name: p.Name}
	if apps != nil {
		if a, ok := apps.Lookup(p.ID, j.ID); ok {
			rec.HasApplied = true
			rec.ApplicationStatus = a.Status
		}
	}

	v := Evaluate(p, c)
	if !v.Eligible {
		rec.FailedReason = FailureOf(v.FailedReason)
		return rec
	}

	m := Score(p, c.Soft)
	pct := m.OverallPercentage
	rec.Eligible = true
	rec.MatchPercentage = &pct
	rec.Details = m.Details
	return rec
}

// Aggregate evaluates every student independently, in one pass.
func Aggregate(j job.Job, c Criteria, students []student.Profile, apps ApplicationLookup) AggregateResult {
	records := make([]StudentRecord, len(students))
	for i := range students {
		records[i] = evaluateRecord(j, c, students[i], apps)
	}
	return summarize(records)
}

// AggregateParallel is Aggregate fanned out over a worker pool. Each student
// writes to its own slot, so the result is identical to Aggregate.
func AggregateParallel(ctx context.Context, j job.Job, c Criteria, students []student.Profile, apps ApplicationLookup, workers int) (AggregateResult, error) {
	if workers <= 1 || len(students) < 2 {
		return Aggregate(j, c, students, apps), nil
	}

	records := make([]StudentRecord, len(students))
	chunk := (len(students) + workers - 1) / workers

	pool := workerpool.New(workers, workers)
	results := pool.Run(ctx)
	for start := 0; start < len(students); start += chunk {
		end := start + chunk
		if end > len(students) {
			end = len(students)
		}
		lo, hi := start, end
		err := pool.Submit(ctx, func(ctx context.Context) error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				records[i] = evaluateRecord(j, c, students[i], apps)
			}
			return nil
		})
		if err != nil {
			break
		}
	}
	pool.Close()

	if err := workerpool.Wait(ctx, results); err != nil {
		return AggregateResult{}, err
	}
	return summarize(records), nil
}

func summarize(records []StudentRecord) AggregateResult {
	out := AggregateResult{Total: len(records)}
	for _, r := range records {
		switch {
		case r.Eligible && r.HasApplied:
			out.Eligible++
			out.Applied++
		case r.Eligible:
			out.Eligible++
			out.NotApplied++
		case r.HasApplied:
			out.AppliedIneligible++
		}
	}

	sort.SliceStable(records, func(a, b int) bool {
		ra, rb := records[a], records[b]
		if ra.Eligible != rb.Eligible {
			return ra.Eligible
		}
		return matchValue(ra) > matchValue(rb)
	})
	out.Students = records
	return out
}

func matchValue(r StudentRecord) int {
	if r.MatchPercentage == nil {
		return -1
	}
	return *r.MatchPercentage
}

// OnlyEligible drops ineligible records while keeping the counts.
func (r AggregateResult) OnlyEligible() AggregateResult {
	kept := make([]StudentRecord, 0, r.Eligible)
	for _, s := range r.Students {
		if s.Eligible {
			kept = append(kept, s)
		}
	}
	r.Students = kept
	return r
}
