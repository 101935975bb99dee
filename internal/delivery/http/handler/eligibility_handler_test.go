package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/middleware"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/eligibility"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/jwt"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubEligibilityUC struct {
	lastDraft  job.Job
	lastParams usecase.ListEligibleParams
	lastUser   uuid.UUID
	result     eligibility.StudentResult
	aggregate  eligibility.AggregateResult
	err        error
}

func (s *stubEligibilityUC) EstimateEligibleCount(_ context.Context, draft job.Job) (usecase.Estimate, error) {
	s.lastDraft = draft
	return usecase.Estimate{Eligible: 12, Total: 40, OpenForAll: draft.Eligibility.OpenForAll()}, s.err
}

func (s *stubEligibilityUC) EvaluateForStudent(_ context.Context, userID, _ uuid.UUID) (eligibility.StudentResult, error) {
	s.lastUser = userID
	return s.result, s.err
}

func (s *stubEligibilityUC) ListEligibleStudents(_ context.Context, _ uuid.UUID, params usecase.ListEligibleParams) (eligibility.AggregateResult, error) {
	s.lastParams = params
	return s.aggregate, s.err
}

func (s *stubEligibilityUC) RefreshOpenJobs(context.Context) (int, error) { return 0, nil }

func (s *stubEligibilityUC) InvalidateJob(context.Context, uuid.UUID) error { return s.err }

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

const testSecret = "handler-test-secret"

func newTestApp(uc usecase.EligibilityUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	authMw := middleware.NewAuthMiddleware(jwt.NewHMACService(testSecret, time.Minute))
	api := app.Group("/api/v1", authMw.Middleware())
	NewEligibilityHandler(uc).RegisterRoutes(api)
	return app
}

func tokenFor(t *testing.T, userID uuid.UUID, role jwt.Role) string {
	t.Helper()
	tok, err := jwt.NewHMACService(testSecret, time.Minute).GenerateAccessToken(userID, role)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return tok
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func TestEligibilityHandler_Estimate(t *testing.T) {
	uc := &stubEligibilityUC{}
	app := newTestApp(uc)
	tok := tokenFor(t, uuid.New(), jwt.RoleCoordinator)

	body := `{"title":" Data Analyst ","eligibility":{"female_only":true,"campuses":["Pune"]},"required_skills":[{"skill_id":"6f1d1c3e-6a51-4c1b-9a4e-0f4b7f1f0a01","skill_name":"Excel","proficiency_level":3}]}`
	status, env := do(t, app, http.MethodPost, "/api/v1/jobs/eligibility/estimate", tok, body)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}

	var est struct {
		Eligible   int  `json:"eligible"`
		Total      int  `json:"total"`
		OpenForAll bool `json:"open_for_all"`
	}
	if err := json.Unmarshal(env.Data, &est); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if est.Eligible != 12 || est.Total != 40 || est.OpenForAll {
		t.Fatalf("unexpected estimate: %+v", est)
	}
	if uc.lastDraft.Title != "Data Analyst" || uc.lastDraft.Status != job.StatusDraft || !uc.lastDraft.Eligibility.FemaleOnly {
		t.Fatalf("unexpected draft passed to usecase: %+v", uc.lastDraft)
	}
}

func TestEligibilityHandler_Estimate_Rejections(t *testing.T) {
	app := newTestApp(&stubEligibilityUC{})

	cases := []struct {
		name   string
		token  string
		body   string
		status int
	}{
		{"no token", "", `{}`, http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", `{}`, http.StatusUnauthorized},
		{"student role", tokenFor(t, uuid.New(), jwt.RoleStudent), `{}`, http.StatusForbidden},
		{"bad json", tokenFor(t, uuid.New(), jwt.RoleManager), `{"title":`, http.StatusBadRequest},
		{"level out of range", tokenFor(t, uuid.New(), jwt.RoleCampusPOC), `{"required_skills":[{"skill_id":"6f1d1c3e-6a51-4c1b-9a4e-0f4b7f1f0a01","proficiency_level":9}]}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := do(t, app, http.MethodPost, "/api/v1/jobs/eligibility/estimate", tc.token, tc.body)
			if status != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, status)
			}
		})
	}
}

func TestEligibilityHandler_ForStudent(t *testing.T) {
	reason := eligibility.GradeCriterion{Board: eligibility.KindTwelfthGrade, Requirement: job.GradeRequirement{Required: true}}
	uc := &stubEligibilityUC{result: eligibility.StudentResult{Eligible: false, FailedReason: reason}}
	app := newTestApp(uc)
	userID := uuid.New()
	jobID := uuid.New()

	status, env := do(t, app, http.MethodGet, "/api/v1/jobs/"+jobID.String()+"/eligibility", tokenFor(t, userID, jwt.RoleStudent), "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	if uc.lastUser != userID {
		t.Fatalf("expected caller's user id to reach usecase")
	}

	var out struct {
		JobID        uuid.UUID `json:"job_id"`
		Eligible     bool      `json:"eligible"`
		CanApply     bool      `json:"can_apply"`
		FailedReason *struct {
			Kind string `json:"kind"`
		} `json:"failed_reason"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.JobID != jobID || out.Eligible || out.CanApply {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.FailedReason == nil || out.FailedReason.Kind != string(eligibility.KindTwelfthGrade) {
		t.Fatalf("expected twelfth grade reason, got %+v", out.FailedReason)
	}
}

func TestEligibilityHandler_ForStudent_Errors(t *testing.T) {
	tok := tokenFor(t, uuid.New(), jwt.RoleStudent)

	status, _ := do(t, newTestApp(&stubEligibilityUC{}), http.MethodGet, "/api/v1/jobs/not-a-uuid/eligibility", tok, "")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", status)
	}

	status, _ = do(t, newTestApp(&stubEligibilityUC{err: usecase.ErrJobNotFound}), http.MethodGet, "/api/v1/jobs/"+uuid.NewString()+"/eligibility", tok, "")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}

	status, env := do(t, newTestApp(&stubEligibilityUC{err: errors.New("pool closed")}), http.MethodGet, "/api/v1/jobs/"+uuid.NewString()+"/eligibility", tok, "")
	if status != http.StatusInternalServerError || strings.Contains(env.Message, "pool closed") {
		t.Fatalf("expected masked 500, got %d %q", status, env.Message)
	}
}

func TestEligibilityHandler_EligibleStudents(t *testing.T) {
	pct := 80
	uc := &stubEligibilityUC{aggregate: eligibility.AggregateResult{
		Total: 3, Eligible: 1, Applied: 1, AppliedIneligible: 1,
		Students: []eligibility.StudentRecord{{StudentID: uuid.New(), Name: "Asha", Eligible: true, MatchPercentage: &pct, HasApplied: true}},
	}}
	app := newTestApp(uc)
	tok := tokenFor(t, uuid.New(), jwt.RoleCampusPOC)
	path := "/api/v1/jobs/" + uuid.NewString() + "/eligible-students?include_ineligible=true"

	status, env := do(t, app, http.MethodGet, path, tok, "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	if !uc.lastParams.IncludeIneligible || uc.lastParams.Refresh {
		t.Fatalf("unexpected params: %+v", uc.lastParams)
	}

	var out struct {
		Total             int `json:"total"`
		Applied           int `json:"applied"`
		AppliedIneligible int `json:"applied_ineligible"`
		Students          []struct {
			Name            string `json:"name"`
			MatchPercentage *int   `json:"match_percentage"`
		} `json:"students"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.Total != 3 || out.Applied != 1 || out.AppliedIneligible != 1 || len(out.Students) != 1 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Students[0].MatchPercentage == nil || *out.Students[0].MatchPercentage != 80 {
		t.Fatalf("unexpected match percentage: %+v", out.Students[0])
	}

	status, _ = do(t, app, http.MethodGet, "/api/v1/jobs/"+uuid.NewString()+"/eligible-students?include_ineligible=maybe", tok, "")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad flag, got %d", status)
	}

	status, _ = do(t, app, http.MethodGet, path, tokenFor(t, uuid.New(), jwt.RoleStudent), "")
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d", status)
	}
}
