package eligibility

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/settings"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"

	"github.com/google/uuid"
)

// Engine is the single entry point shared by job authoring, the application
// gate and the eligible-students view. It holds no per-call state.
type Engine struct {
	policy            Policy
	workers           int
	parallelThreshold int
}

type Option func(*Engine)

// WithParallelism fans ListEligibleStudents out over workers goroutines once
// the population reaches threshold students.
func WithParallelism(workers, threshold int) Option {
	return func(e *Engine) {
		e.workers = workers
		e.parallelThreshold = threshold
	}
}

func NewEngine(policy Policy, opts ...Option) *Engine {
	e := &Engine{policy: policy, workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *Engine) Policy() Policy { return e.policy }

func (e *Engine) Criteria(j job.Job, cfg settings.SchoolModuleConfig) Criteria {
	return Normalize(j, cfg, e.policy)
}

type StudentResult struct {
	StudentID    uuid.UUID
	Eligible     bool
	FailedReason HardCriterion
	Match        *Match
}

func (e *Engine) EvaluateForStudent(j job.Job, p student.Profile, cfg settings.SchoolModuleConfig) StudentResult {
	c := e.Criteria(j, cfg)
	v := Evaluate(p, c)
	res := StudentResult{StudentID: p.ID, Eligible: v.Eligible, FailedReason: v.FailedReason}
	if v.Eligible {
		m := Score(p, c.Soft)
		res.Match = &m
	}
	return res
}

// EstimateEligibleCount runs the same evaluator used at apply time, with
// nobody considered to have applied.
func (e *Engine) EstimateEligibleCount(j job.Job, students []student.Profile, cfg settings.SchoolModuleConfig) int {
	c := e.Criteria(j, cfg)
	n := 0
	for i := range students {
		if Evaluate(students[i], c).Eligible {
			n++
		}
	}
	return n
}

func (e *Engine) ListEligibleStudents(ctx context.Context, j job.Job, students []student.Profile, apps ApplicationLookup, cfg settings.SchoolModuleConfig) (AggregateResult, error) {
	c := e.Criteria(j, cfg)
	if e.workers > 1 && len(students) >= e.parallelThreshold {
		return AggregateParallel(ctx, j, c, students, apps, e.workers)
	}
	return Aggregate(j, c, students, apps), nil
}
