package eligibility

import (
	"context"
	"testing"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"
)

func pythonJob() job.Job {
	return jobWith(
		job.Eligibility{TenthGrade: job.GradeRequirement{Required: true, MinPercentage: pct(60)}},
		job.RequiredSkill{SkillID: skillPython, SkillName: "Python", ProficiencyLevel: 3, Required: true},
	)
}

func pythonStudent(tenth float64, rating int) student.Profile {
	p := baseStudent()
	p.TenthGrade = &student.AcademicRecord{Percentage: pct(tenth)}
	p.TechnicalSkills = []student.Skill{{SkillID: skillPython, SkillName: "Python", SelfRating: rating}}
	return p
}

func TestEngine_ScenarioEligiblePartialMatch(t *testing.T) {
	e := NewEngine(Policy{})
	res := e.EvaluateForStudent(pythonJob(), pythonStudent(75, 2), testModules())

	if !res.Eligible || res.FailedReason != nil {
		t.Fatalf("expected eligible, got %+v", res)
	}
	if res.Match == nil {
		t.Fatalf("expected a match for an eligible student")
	}
	if res.Match.OverallPercentage != 67 {
		t.Fatalf("expected 67, got %d", res.Match.OverallPercentage)
	}
}

func TestEngine_ScenarioAcademicFailure(t *testing.T) {
	e := NewEngine(Policy{})
	res := e.EvaluateForStudent(pythonJob(), pythonStudent(55, 2), testModules())

	if res.Eligible {
		t.Fatalf("expected ineligible")
	}
	if res.FailedReason == nil || res.FailedReason.Kind() != KindTenthGrade {
		t.Fatalf("expected tenth grade failure, got %+v", res.FailedReason)
	}
	if res.Match != nil {
		t.Fatalf("ineligible students must not be scored")
	}
}

func TestEngine_ScenarioEnglishSoftByDefault(t *testing.T) {
	j := jobWith(job.Eligibility{EnglishSpeaking: "B2"})
	p := baseStudent()
	p.English.Speaking = "A2"

	res := NewEngine(Policy{}).EvaluateForStudent(j, p, testModules())
	if !res.Eligible {
		t.Fatalf("english must not gate under the default policy")
	}
	if res.Match.OverallPercentage != 50 {
		t.Fatalf("expected 50, got %d", res.Match.OverallPercentage)
	}
	if d := res.Match.Details[0]; d.Kind != KindEnglishSpeaking || d.RequiredLevel != 4 || d.StudentLevel != 2 || d.Credit != 0.5 {
		t.Fatalf("unexpected detail %+v", d)
	}
}

func TestEngine_ScenarioEnglishAsGate(t *testing.T) {
	j := jobWith(job.Eligibility{EnglishSpeaking: "B2"})
	p := baseStudent()
	p.English.Speaking = "A2"

	e := NewEngine(Policy{GateEnglish: true})
	res := e.EvaluateForStudent(j, p, testModules())
	if res.Eligible {
		t.Fatalf("english must gate when the policy says so")
	}
	if res.FailedReason.Kind() != KindEnglishSpeaking || res.Match != nil {
		t.Fatalf("unexpected result %+v", res)
	}

	p.English.Speaking = "C1"
	res = e.EvaluateForStudent(j, p, testModules())
	if !res.Eligible || res.Match.OverallPercentage != 100 {
		t.Fatalf("expected eligible with full match, got %+v", res)
	}
}

func TestEngine_RequiredSkillGate(t *testing.T) {
	p := pythonStudent(75, 2)

	if !NewEngine(Policy{}).EvaluateForStudent(pythonJob(), p, testModules()).Eligible {
		t.Fatalf("required skills must only score under the default policy")
	}

	res := NewEngine(Policy{GateRequiredSkills: true}).EvaluateForStudent(pythonJob(), p, testModules())
	if res.Eligible || res.FailedReason.Kind() != KindSkill {
		t.Fatalf("expected skill gate failure, got %+v", res)
	}
}

// All call sites must agree for every student.
func TestEngine_CallSitesAgree(t *testing.T) {
	e := NewEngine(Policy{}, WithParallelism(4, 10))
	j := pythonJob()
	students := population(60)

	estimate := e.EstimateEligibleCount(j, students, testModules())
	list, err := e.ListEligibleStudents(context.Background(), j, students, nil, testModules())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if estimate != list.Eligible {
		t.Fatalf("estimate %d != list %d", estimate, list.Eligible)
	}

	byID := make(map[string]StudentRecord, len(list.Students))
	for _, r := range list.Students {
		byID[r.StudentID.String()] = r
	}
	gate := 0
	for _, p := range students {
		single := e.EvaluateForStudent(j, p, testModules())
		rec := byID[p.ID.String()]
		if single.Eligible != rec.Eligible {
			t.Fatalf("student %s: gate=%v list=%v", p.Name, single.Eligible, rec.Eligible)
		}
		if single.Eligible {
			gate++
			if *rec.MatchPercentage != single.Match.OverallPercentage {
				t.Fatalf("student %s: match differs", p.Name)
			}
		}
	}
	if gate != estimate {
		t.Fatalf("gate count %d != estimate %d", gate, estimate)
	}
}

func TestEngine_ModuleGateIgnoresSchoolCase(t *testing.T) {
	e := NewEngine(Policy{})
	p := baseStudent()
	p.CurrentModule = "Foundations"

	for _, school := range []string{"School of Programming", "school of programming", " SCHOOL OF PROGRAMMING"} {
		j := jobWith(job.Eligibility{Schools: []string{school}, MinModule: "Advanced"})
		res := e.EvaluateForStudent(j, p, testModules())
		if res.Eligible || res.FailedReason == nil || res.FailedReason.Kind() != KindModule {
			t.Fatalf("school %q: expected module failure, got %+v", school, res)
		}
		if n := e.EstimateEligibleCount(j, []student.Profile{p}, testModules()); n != 0 {
			t.Fatalf("school %q: estimate admitted %d students", school, n)
		}
	}
}
