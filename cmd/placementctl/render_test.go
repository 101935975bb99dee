package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/eligibility"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

func init() {
	color.NoColor = true
}

func TestRenderAggregate(t *testing.T) {
	pct := 67
	res := eligibility.AggregateResult{
		Total: 2, Eligible: 1, Applied: 1, AppliedIneligible: 0,
		Students: []eligibility.StudentRecord{
			{StudentID: uuid.New(), Name: "Asha", Eligible: true, MatchPercentage: &pct, HasApplied: true, ApplicationStatus: "shortlisted"},
			{StudentID: uuid.New(), Name: "Bina", FailedReason: &eligibility.Failure{Kind: eligibility.KindCampus, Description: "campus one of Pune"}},
		},
	}

	var buf bytes.Buffer
	renderAggregate(&buf, res)
	out := buf.String()

	for _, want := range []string{"Asha", "67", "shortlisted", "Bina", "campus one of Pune"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "Asha") > strings.Index(out, "Bina") {
		t.Fatalf("expected rows in result order")
	}
}

func TestRenderAggregate_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderAggregate(&buf, eligibility.AggregateResult{})
	if !strings.Contains(buf.String(), "No students to show.") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestRenderStudentResult(t *testing.T) {
	var buf bytes.Buffer
	renderStudentResult(&buf, eligibility.StudentResult{
		FailedReason: eligibility.GenderCriterion{Gender: "female"},
	})
	if !strings.Contains(buf.String(), "Not eligible.") || !strings.Contains(buf.String(), "female candidates only") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	renderStudentResult(&buf, eligibility.StudentResult{
		Eligible: true,
		Match: &eligibility.Match{OverallPercentage: 75, Details: []eligibility.MatchDetail{
			{CriterionName: "Python", RequiredLevel: 4, StudentLevel: 3, Credit: 0.75},
		}},
	})
	out := buf.String()
	if !strings.Contains(out, "Match: 75%") || !strings.Contains(out, "0.75") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderEstimate(t *testing.T) {
	var buf bytes.Buffer
	renderEstimate(&buf, job.Job{Title: "Analyst", CompanyName: "Acme"}, usecase.Estimate{Eligible: 5, Total: 9, OpenForAll: true})
	out := buf.String()
	if !strings.Contains(out, "Eligible: 5 of 9") || !strings.Contains(out, "Open for all") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
