package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/eligibility"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/settings"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/infrastructure/cache"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/repository"

	"github.com/google/uuid"
)

const (
	// RefreshLockTTL bounds a whole RefreshOpenJobs run. The run's context
	// ends refreshLockMargin before the lock expires.
	RefreshLockTTL    = 15 * time.Minute
	refreshLockMargin = 30 * time.Second
)

type Estimate struct {
	Eligible   int  `json:"eligible"`
	Total      int  `json:"total"`
	OpenForAll bool `json:"open_for_all"`
}

type ListEligibleParams struct {
	IncludeIneligible bool
	Refresh           bool
}

type EligibilityUsecase interface {
	EstimateEligibleCount(ctx context.Context, draft job.Job) (Estimate, error)
	EvaluateForStudent(ctx context.Context, userID, jobID uuid.UUID) (eligibility.StudentResult, error)
	ListEligibleStudents(ctx context.Context, jobID uuid.UUID, params ListEligibleParams) (eligibility.AggregateResult, error)
	RefreshOpenJobs(ctx context.Context) (int, error)
	InvalidateJob(ctx context.Context, jobID uuid.UUID) error
}

type Eligibility struct {
	engine   *eligibility.Engine
	jobs     repository.JobRepository
	students repository.StudentRepository
	apps     repository.ApplicationRepository
	settings repository.SettingsRepository
	pop      repository.PopulationRepository
	cache    EligibilityCache
	cacheTTL time.Duration
	logger   *log.Logger
}

type EligibilityDeps struct {
	Jobs         repository.JobRepository
	Students     repository.StudentRepository
	Applications repository.ApplicationRepository
	Settings     repository.SettingsRepository
	Population   repository.PopulationRepository
	Cache        EligibilityCache
	CacheTTL     time.Duration
	Logger       *log.Logger
}

func NewEligibilityUsecase(engine *eligibility.Engine, deps EligibilityDeps) *Eligibility {
	if engine == nil {
		engine = eligibility.NewEngine(eligibility.Policy{})
	}
	return &Eligibility{
		engine:   engine,
		jobs:     deps.Jobs,
		students: deps.Students,
		apps:     deps.Applications,
		settings: deps.Settings,
		pop:      deps.Population,
		cache:    deps.Cache,
		cacheTTL: deps.CacheTTL,
		logger:   deps.Logger,
	}
}

// EstimateEligibleCount evaluates an unsaved job against every active student.
func (u *Eligibility) EstimateEligibleCount(ctx context.Context, draft job.Job) (Estimate, error) {
	cfg, err := u.schoolModules(ctx)
	if err != nil {
		return Estimate{}, err
	}
	students, err := u.students.ListActive(ctx)
	if err != nil {
		u.logf("[Eligibility] list students failed: %v", err)
		return Estimate{}, ErrInternal
	}

	return Estimate{
		Eligible:   u.engine.EstimateEligibleCount(draft, students, cfg),
		Total:      len(students),
		OpenForAll: draft.Eligibility.OpenForAll(),
	}, nil
}

// EvaluateForStudent is the application gate: it resolves the caller's
// profile and runs the same evaluator used by the other views.
func (u *Eligibility) EvaluateForStudent(ctx context.Context, userID, jobID uuid.UUID) (eligibility.StudentResult, error) {
	if userID == uuid.Nil || jobID == uuid.Nil {
		return eligibility.StudentResult{}, ErrInvalidInput
	}

	j, err := u.findJob(ctx, jobID)
	if err != nil {
		return eligibility.StudentResult{}, err
	}

	p, err := u.students.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return eligibility.StudentResult{}, ErrStudentNotFound
		}
		u.logf("[Eligibility] find student user=%s failed: %v", userID, err)
		return eligibility.StudentResult{}, ErrInternal
	}

	cfg, err := u.schoolModules(ctx)
	if err != nil {
		return eligibility.StudentResult{}, err
	}
	return u.engine.EvaluateForStudent(j, p, cfg), nil
}

// ListEligibleStudents returns the per-student view of a job. Results are
// cached per job version, settings version, population fingerprint and
// include flag, so a cached view never disagrees with the application gate.
// Without a fingerprint the view is always computed fresh.
func (u *Eligibility) ListEligibleStudents(ctx context.Context, jobID uuid.UUID, params ListEligibleParams) (eligibility.AggregateResult, error) {
	if jobID == uuid.Nil {
		return eligibility.AggregateResult{}, ErrInvalidInput
	}

	j, err := u.findJob(ctx, jobID)
	if err != nil {
		return eligibility.AggregateResult{}, err
	}
	cfg, err := u.schoolModules(ctx)
	if err != nil {
		return eligibility.AggregateResult{}, err
	}

	key := u.cacheKey(ctx, j, cfg, params.IncludeIneligible)
	if !params.Refresh && key != "" {
		var cached eligibility.AggregateResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			u.logf("[Eligibility] Cache HIT: %s", key)
			return cached, nil
		}
		u.logf("[Eligibility] Cache MISS: %s", key)
	}

	res, err := u.aggregate(ctx, j, cfg)
	if err != nil {
		return eligibility.AggregateResult{}, err
	}
	if !params.IncludeIneligible {
		res = res.OnlyEligible()
	}

	if key != "" {
		if err := u.cache.SetJSON(ctx, key, res, u.cacheTTL); err != nil {
			u.logf("[Eligibility] cache set failed key=%s err=%v", key, err)
		}
	}
	return res, nil
}

// RefreshOpenJobs recomputes the cached aggregates of every active job and
// returns how many jobs were refreshed. Only one instance refreshes at a time.
func (u *Eligibility) RefreshOpenJobs(ctx context.Context) (int, error) {
	if u.cache != nil {
		token, ok, err := u.cache.TryLock(ctx, cache.RefreshLockKey(), RefreshLockTTL)
		if err != nil {
			u.logf("[Eligibility] refresh lock failed: %v", err)
		}
		if !ok {
			return 0, nil
		}
		defer func() {
			if err := u.cache.Unlock(context.Background(), cache.RefreshLockKey(), token); err != nil {
				u.logf("[Eligibility] refresh unlock failed: %v", err)
			}
		}()
	}

	ctx, cancel := context.WithTimeout(ctx, RefreshLockTTL-refreshLockMargin)
	defer cancel()

	ids, err := u.jobs.ListOpenIDs(ctx)
	if err != nil {
		u.logf("[Eligibility] list open jobs failed: %v", err)
		return 0, ErrInternal
	}

	refreshed := 0
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if u.cache != nil {
			if err := u.cache.InvalidateJob(ctx, id); err != nil {
				u.logf("[Eligibility] invalidate job=%s failed: %v", id, err)
			}
		}
		ok := true
		for _, include := range []bool{false, true} {
			if _, err := u.ListEligibleStudents(ctx, id, ListEligibleParams{IncludeIneligible: include, Refresh: true}); err != nil {
				errs = append(errs, err)
				ok = false
				u.logf("[Eligibility] refresh job=%s include_ineligible=%v failed: %v", id, include, err)
				break
			}
		}
		if ok {
			refreshed++
		}
	}
	return refreshed, errors.Join(errs...)
}

func (u *Eligibility) InvalidateJob(ctx context.Context, jobID uuid.UUID) error {
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}
	if u.cache == nil {
		return nil
	}
	return u.cache.InvalidateJob(ctx, jobID)
}

// cacheKey returns "" when the result must not be cached.
func (u *Eligibility) cacheKey(ctx context.Context, j job.Job, cfg settings.SchoolModuleConfig, include bool) string {
	if u.cache == nil || u.pop == nil {
		return ""
	}
	pop, err := u.pop.ForJob(ctx, j.ID)
	if err != nil {
		u.logf("[Eligibility] population fingerprint job=%s failed, skipping cache: %v", j.ID, err)
		return ""
	}
	return cache.EligibilityKey(j.ID, j.UpdatedAt, cfg.Version, pop.Fingerprint(), include)
}

func (u *Eligibility) aggregate(ctx context.Context, j job.Job, cfg settings.SchoolModuleConfig) (eligibility.AggregateResult, error) {
	students, err := u.students.ListActive(ctx)
	if err != nil {
		u.logf("[Eligibility] list students failed: %v", err)
		return eligibility.AggregateResult{}, ErrInternal
	}

	var apps eligibility.ApplicationLookup
	if u.apps != nil {
		idx, err := u.apps.IndexByJobID(ctx, j.ID)
		if err != nil {
			u.logf("[Eligibility] load applications job=%s failed: %v", j.ID, err)
			return eligibility.AggregateResult{}, ErrInternal
		}
		apps = idx
	}

	start := time.Now()
	res, err := u.engine.ListEligibleStudents(ctx, j, students, apps, cfg)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return eligibility.AggregateResult{}, ctxErr
		}
		return eligibility.AggregateResult{}, ErrInternal
	}
	u.logf("[Eligibility] job=%s students=%d eligible=%d took=%s", j.ID, res.Total, res.Eligible, time.Since(start))
	return res, nil
}

func (u *Eligibility) findJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		u.logf("[Eligibility] find job=%s failed: %v", jobID, err)
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// schoolModules loads one settings snapshot per call.
func (u *Eligibility) schoolModules(ctx context.Context) (settings.SchoolModuleConfig, error) {
	if u.settings == nil {
		return settings.SchoolModuleConfig{}, nil
	}
	cfg, err := u.settings.SchoolModules(ctx)
	if err != nil {
		u.logf("[Eligibility] load school modules failed: %v", err)
		return settings.SchoolModuleConfig{}, ErrInternal
	}
	return cfg, nil
}

func (u *Eligibility) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
