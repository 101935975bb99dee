package seeder

import (
	"fmt"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"

	"github.com/google/uuid"
)

var (
	skillJavaScript    = uuid.MustParse("0b8f2a10-5d0e-4b7a-9f43-1a2b3c4d5e01")
	skillPython        = uuid.MustParse("0b8f2a10-5d0e-4b7a-9f43-1a2b3c4d5e02")
	skillExcel         = uuid.MustParse("0b8f2a10-5d0e-4b7a-9f43-1a2b3c4d5e03")
	skillCommunication = uuid.MustParse("0b8f2a10-5d0e-4b7a-9f43-1a2b3c4d5e04")
	skillCooking       = uuid.MustParse("0b8f2a10-5d0e-4b7a-9f43-1a2b3c4d5e05")

	jobWebDeveloper = uuid.MustParse("7a1c0000-0000-4000-8000-000000000001")
	jobCommisChef   = uuid.MustParse("7a1c0000-0000-4000-8000-000000000002")
	jobOperations   = uuid.MustParse("7a1c0000-0000-4000-8000-000000000003")
)

func f(v float64) *float64 { return &v }

// demoApplications pairs student index (1-based, as in demoStudents) with a job.
var demoApplications = []struct {
	student int
	job     uuid.UUID
}{
	{student: 1, job: jobWebDeveloper},
	{student: 3, job: jobWebDeveloper},
	{student: 4, job: jobCommisChef},
	{student: 6, job: jobOperations},
}

func demoStudentID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("5d000000-0000-4000-8000-%012d", n))
}

func demoJobs() []job.Job {
	return []job.Job{
		{
			ID:          jobWebDeveloper,
			Title:       "Junior Web Developer",
			CompanyName: "Acme Tech",
			Status:      job.StatusActive,
			Eligibility: job.Eligibility{
				TenthGrade:      job.GradeRequirement{Required: true, MinPercentage: f(60)},
				Schools:         []string{"School of Programming"},
				MinModule:       "Web Development",
				EnglishSpeaking: "B1",
				MinAttendance:   f(75),
			},
			RequiredSkills: []job.RequiredSkill{
				{SkillID: skillJavaScript, SkillName: "JavaScript", ProficiencyLevel: 3, Required: true},
				{SkillID: skillCommunication, SkillName: "Communication", ProficiencyLevel: 2},
			},
		},
		{
			ID:          jobCommisChef,
			Title:       "Commis Chef",
			CompanyName: "Taj Kitchens",
			Status:      job.StatusActive,
			Eligibility: job.Eligibility{
				Schools:   []string{"School of Second Chance"},
				MinModule: "MasterChef",
				Campuses:  []string{"Pune", "Dharamshala"},
			},
			RequiredSkills: []job.RequiredSkill{
				{SkillID: skillCooking, SkillName: "Cooking", ProficiencyLevel: 3, Required: true},
			},
		},
		{
			ID:          jobOperations,
			Title:       "Operations Associate",
			CompanyName: "Northwind",
			Status:      job.StatusActive,
			RequiredSkills: []job.RequiredSkill{
				{SkillID: skillExcel, SkillName: "Excel", ProficiencyLevel: 2},
				{SkillID: skillCommunication, SkillName: "Communication", ProficiencyLevel: 3},
			},
		},
	}
}

func demoStudents(now time.Time) []student.Profile {
	approved := now.Add(-30 * 24 * time.Hour)
	mk := func(n int, name string) student.Profile {
		return student.Profile{
			ID:         demoStudentID(n),
			UserID:     uuid.MustParse(fmt.Sprintf("5e000000-0000-4000-8000-%012d", n)),
			Name:       name,
			Status:     student.StatusApproved,
			ApprovedAt: &approved,
		}
	}

	asha := mk(1, "Asha Kumari")
	asha.TechnicalSkills = []student.Skill{{SkillID: skillJavaScript, SkillName: "JavaScript", SelfRating: 3}, {SkillID: skillPython, SkillName: "Python", SelfRating: 2}}
	asha.SoftSkills = []student.Skill{{SkillID: skillCommunication, SkillName: "Communication", SelfRating: 3}}
	asha.English = student.EnglishProficiency{Speaking: "B2", Writing: "B1"}
	asha.TenthGrade = &student.AcademicRecord{Percentage: f(82)}
	asha.CurrentSchool, asha.CurrentModule, asha.Campus, asha.Gender = "School of Programming", "Full Stack", "Pune", "female"
	asha.AttendancePercentage, asha.MonthsAtInstitution = f(91), f(14)

	ravi := mk(2, "Ravi Sharma")
	ravi.TechnicalSkills = []student.Skill{{SkillID: skillJavaScript, SkillName: "JavaScript", SelfRating: 2}}
	ravi.English = student.EnglishProficiency{Speaking: "A2", Writing: "A2"}
	ravi.TenthGrade = &student.AcademicRecord{Percentage: f(71)}
	ravi.CurrentSchool, ravi.CurrentModule, ravi.Campus, ravi.Gender = "School of Programming", "Web Development", "Dharamshala", "male"
	ravi.AttendancePercentage, ravi.MonthsAtInstitution = f(80), f(9)

	meena := mk(3, "Meena Devi")
	meena.TechnicalSkills = []student.Skill{{SkillID: skillJavaScript, SkillName: "JavaScript", SelfRating: 4}}
	meena.TenthGrade = &student.AcademicRecord{Percentage: f(58)}
	meena.CurrentSchool, meena.CurrentModule, meena.Campus, meena.Gender = "School of Programming", "Problem Solving", "Pune", "female"
	meena.AttendancePercentage = f(95)

	sunita := mk(4, "Sunita Rawat")
	sunita.TechnicalSkills = []student.Skill{{SkillID: skillCooking, SkillName: "Cooking", SelfRating: 4}}
	sunita.SoftSkills = []student.Skill{{SkillID: skillCommunication, SkillName: "Communication", SelfRating: 2}}
	sunita.CurrentSchool, sunita.CurrentModule, sunita.Campus, sunita.Gender = "School of Second Chance", "MasterChef", "Dharamshala", "female"

	pooja := mk(5, "Pooja Negi")
	pooja.TechnicalSkills = []student.Skill{{SkillID: skillCooking, SkillName: "Cooking", SelfRating: 1}}
	pooja.CurrentSchool, pooja.CurrentModule, pooja.Campus, pooja.Gender = "School of Second Chance", "FashionDesigning", "Pune", "female"

	karan := mk(6, "Karan Singh")
	karan.OfficeSkills = []student.Skill{{SkillID: skillExcel, SkillName: "Excel", SelfRating: 3}}
	karan.SoftSkills = []student.Skill{{SkillID: skillCommunication, SkillName: "Communication", SelfRating: 2}}
	karan.CurrentSchool, karan.CurrentModule, karan.Campus, karan.Gender = "School of Business", "Digital Marketing", "Bangalore", "male"
	karan.Status, karan.ApprovedAt = student.StatusPendingApproval, nil

	return []student.Profile{asha, ravi, meena, sunita, pooja, karan}
}
