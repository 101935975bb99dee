package eligibility

import (
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/settings"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"

	"github.com/google/uuid"
)

var (
	skillPython = uuid.MustParse("6f1d1c3e-6a51-4c1b-9a4e-0f4b7f1f0a01")
	skillExcel  = uuid.MustParse("6f1d1c3e-6a51-4c1b-9a4e-0f4b7f1f0a02")
	skillComms  = uuid.MustParse("6f1d1c3e-6a51-4c1b-9a4e-0f4b7f1f0a03")
)

func pct(v float64) *float64 { return &v }

func testModules() settings.SchoolModuleConfig {
	return settings.SchoolModuleConfig{
		Version: 7,
		Schools: map[string]settings.SchoolModules{
			"School of Programming": {
				Kind:    settings.ModuleKindHierarchical,
				Modules: []string{"Foundations", "Intermediate", "Advanced"},
			},
			"School of Second Chance": {
				Kind:    settings.ModuleKindTrack,
				Modules: []string{"MasterChef", "FashionDesigning"},
			},
		},
	}
}

// baseStudent passes every constraint used in these tests unless modified.
func baseStudent() student.Profile {
	return student.Profile{
		ID:   uuid.New(),
		Name: "Asha",
		TechnicalSkills: []student.Skill{
			{SkillID: skillPython, SkillName: "Python", SelfRating: 3},
		},
		OfficeSkills: []student.Skill{
			{SkillID: skillExcel, SkillName: "Excel", SelfRating: 2},
		},
		English:              student.EnglishProficiency{Speaking: "B2", Writing: "B1"},
		TenthGrade:           &student.AcademicRecord{Percentage: pct(80)},
		TwelfthGrade:         &student.AcademicRecord{Percentage: pct(70)},
		HigherEducation:      []student.Degree{{Degree: "BCA"}},
		CurrentSchool:        "School of Programming",
		CurrentModule:        "Advanced",
		Campus:               "pune",
		Gender:               "female",
		AttendancePercentage: pct(92),
		MonthsAtInstitution:  pct(10),
		Certifications:       []string{"AWS Cloud Practitioner"},
		Status:               student.StatusApproved,
	}
}

func jobWith(e job.Eligibility, skills ...job.RequiredSkill) job.Job {
	return job.Job{ID: uuid.New(), Title: "Junior Developer", Eligibility: e, RequiredSkills: skills}
}
