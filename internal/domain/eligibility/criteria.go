package eligibility

import (
	"fmt"
	"strings"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/settings"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"
)

type Kind string

const (
	KindTenthGrade      Kind = "tenth_grade"
	KindTwelfthGrade    Kind = "twelfth_grade"
	KindHigherEducation Kind = "higher_education"
	KindSchool          Kind = "school"
	KindCampus          Kind = "campus"
	KindModule          Kind = "module"
	KindGender          Kind = "gender"
	KindAttendance      Kind = "attendance"
	KindTenure          Kind = "tenure"
	KindCertifications  Kind = "certifications"
	KindProfileApproval Kind = "profile_approval"
	KindSkill           Kind = "skill"
	KindEnglishSpeaking Kind = "english_speaking"
	KindEnglishWriting  Kind = "english_writing"
)

type Criterion interface {
	Kind() Kind
	Describe() string
}

// HardCriterion gates eligibility.
type HardCriterion interface {
	Criterion
	Satisfied(p student.Profile) bool
}

// SoftCriterion is graded into the match percentage.
type SoftCriterion interface {
	Criterion
	Name() string
	RequiredLevel() int
	StudentLevel(p student.Profile) int
	Weight() float64
}

type Criteria struct {
	Hard []HardCriterion
	Soft []SoftCriterion
}

func (c Criteria) All() []Criterion {
	out := make([]Criterion, 0, len(c.Hard)+len(c.Soft))
	for _, h := range c.Hard {
		out = append(out, h)
	}
	for _, s := range c.Soft {
		out = append(out, s)
	}
	return out
}

// Policy holds the overridable scoring and gating choices.
type Policy struct {
	// GateRequiredSkills additionally turns every required=true skill into a
	// hard criterion at the job's proficiency level.
	GateRequiredSkills bool
	// GateEnglish additionally turns English speaking/writing levels into
	// hard criteria.
	GateEnglish bool
	// SoftWeights overrides the default weight of 1 per soft criterion kind.
	SoftWeights map[Kind]float64
}

func (p Policy) weight(k Kind) float64 {
	w, ok := p.SoftWeights[k]
	if !ok {
		return 1
	}
	if w < 0 {
		return 0
	}
	return w
}

// Normalize flattens a job into atomic criteria. Hard criteria come out in
// the fixed order the evaluator relies on for first-failure reporting.
func Normalize(j job.Job, cfg settings.SchoolModuleConfig, policy Policy) Criteria {
	e := j.Eligibility
	var c Criteria

	if e.TenthGrade.Enabled() {
		c.Hard = append(c.Hard, GradeCriterion{Board: KindTenthGrade, Requirement: e.TenthGrade})
	}
	if e.TwelfthGrade.Enabled() {
		c.Hard = append(c.Hard, GradeCriterion{Board: KindTwelfthGrade, Requirement: e.TwelfthGrade})
	}
	if e.HigherEducation.Enabled() {
		c.Hard = append(c.Hard, HigherEducationCriterion{AcceptedDegrees: nonBlank(e.HigherEducation.AcceptedDegrees)})
	}
	if schools := e.SchoolList(); len(schools) > 0 {
		c.Hard = append(c.Hard, SchoolCriterion{Schools: schools})
	}
	if campuses := e.CampusList(); len(campuses) > 0 {
		c.Hard = append(c.Hard, CampusCriterion{Campuses: campuses})
	}
	if e.ModuleRequirementApplies() {
		c.Hard = append(c.Hard, newModuleCriterion(e.SchoolList()[0], e.MinModule, cfg))
	}
	if e.FemaleOnly {
		c.Hard = append(c.Hard, GenderCriterion{Gender: "female"})
	}
	if e.MinAttendance != nil {
		c.Hard = append(c.Hard, AttendanceCriterion{MinPercentage: *e.MinAttendance})
	}
	if e.MinMonthsAtInstitution != nil {
		c.Hard = append(c.Hard, TenureCriterion{MinMonths: *e.MinMonthsAtInstitution})
	}
	if certs := e.CertificationList(); len(certs) > 0 {
		c.Hard = append(c.Hard, CertificationCriterion{Required: certs})
	}
	if e.ShortlistDeadline != nil {
		c.Hard = append(c.Hard, ProfileApprovalCriterion{Deadline: *e.ShortlistDeadline})
	}

	if policy.GateRequiredSkills {
		for _, rs := range j.RequiredSkills {
			if !rs.Required || SelfRatingOrdinal(rs.ProficiencyLevel) == 0 {
				continue
			}
			c.Hard = append(c.Hard, SkillGateCriterion{Skill: rs})
		}
	}
	if policy.GateEnglish {
		if CEFROrdinal(e.EnglishSpeaking) > 0 {
			c.Hard = append(c.Hard, EnglishGateCriterion{Channel: KindEnglishSpeaking, Level: e.EnglishSpeaking})
		}
		if CEFROrdinal(e.EnglishWriting) > 0 {
			c.Hard = append(c.Hard, EnglishGateCriterion{Channel: KindEnglishWriting, Level: e.EnglishWriting})
		}
	}

	for _, rs := range j.RequiredSkills {
		c.Soft = append(c.Soft, SkillCriterion{Skill: rs, weight: policy.weight(KindSkill)})
	}
	if strings.TrimSpace(e.EnglishSpeaking) != "" {
		c.Soft = append(c.Soft, EnglishCriterion{Channel: KindEnglishSpeaking, Level: e.EnglishSpeaking, weight: policy.weight(KindEnglishSpeaking)})
	}
	if strings.TrimSpace(e.EnglishWriting) != "" {
		c.Soft = append(c.Soft, EnglishCriterion{Channel: KindEnglishWriting, Level: e.EnglishWriting, weight: policy.weight(KindEnglishWriting)})
	}

	return c
}

// GradeCriterion covers both the 10th and 12th grade floors. A student
// without a recorded percentage fails an enabled floor.
type GradeCriterion struct {
	Board       Kind
	Requirement job.GradeRequirement
}

func (c GradeCriterion) Kind() Kind { return c.Board }

func (c GradeCriterion) Describe() string {
	label := "10th grade"
	if c.Board == KindTwelfthGrade {
		label = "12th grade"
	}
	if c.Requirement.MinPercentage == nil {
		return label + " record required"
	}
	return fmt.Sprintf("%s percentage of at least %s%%", label, formatNumber(*c.Requirement.MinPercentage))
}

func (c GradeCriterion) Satisfied(p student.Profile) bool {
	rec := p.TenthGrade
	if c.Board == KindTwelfthGrade {
		rec = p.TwelfthGrade
	}
	if rec == nil || rec.Percentage == nil {
		return false
	}
	if c.Requirement.MinPercentage != nil && *rec.Percentage < *c.Requirement.MinPercentage {
		return false
	}
	return true
}

type HigherEducationCriterion struct {
	AcceptedDegrees []string
}

func (HigherEducationCriterion) Kind() Kind { return KindHigherEducation }

func (c HigherEducationCriterion) Describe() string {
	if len(c.AcceptedDegrees) == 0 {
		return "higher education required"
	}
	return "higher education degree in: " + strings.Join(c.AcceptedDegrees, ", ")
}

func (c HigherEducationCriterion) Satisfied(p student.Profile) bool {
	for _, d := range p.HigherEducation {
		degree := strings.TrimSpace(d.Degree)
		if degree == "" {
			continue
		}
		if len(c.AcceptedDegrees) == 0 || containsFold(c.AcceptedDegrees, degree) {
			return true
		}
	}
	return false
}

type SchoolCriterion struct {
	Schools []string
}

func (SchoolCriterion) Kind() Kind { return KindSchool }

func (c SchoolCriterion) Describe() string {
	return "school in: " + strings.Join(c.Schools, ", ")
}

func (c SchoolCriterion) Satisfied(p student.Profile) bool {
	return containsFold(c.Schools, p.CurrentSchool)
}

type CampusCriterion struct {
	Campuses []string
}

func (CampusCriterion) Kind() Kind { return KindCampus }

func (c CampusCriterion) Describe() string {
	return "campus in: " + strings.Join(c.Campuses, ", ")
}

func (c CampusCriterion) Satisfied(p student.Profile) bool {
	return containsFold(c.Campuses, p.Campus)
}

// ModuleCriterion carries the slice of module configuration it was
// normalized against, so later configuration edits cannot change its answer.
type ModuleCriterion struct {
	School    string
	MinModule string
	modules   settings.SchoolModuleConfig
}

func newModuleCriterion(school, minModule string, cfg settings.SchoolModuleConfig) ModuleCriterion {
	snapshot := settings.SchoolModuleConfig{Version: cfg.Version}
	if sm, ok := cfg.Lookup(school); ok {
		snapshot.Schools = map[string]settings.SchoolModules{
			strings.TrimSpace(school): {Kind: sm.Kind, Modules: append([]string(nil), sm.Modules...)},
		}
	}
	return ModuleCriterion{School: strings.TrimSpace(school), MinModule: strings.TrimSpace(minModule), modules: snapshot}
}

func (ModuleCriterion) Kind() Kind { return KindModule }

func (c ModuleCriterion) Describe() string {
	return fmt.Sprintf("%s module %s or later", c.School, c.MinModule)
}

func (c ModuleCriterion) Resolve(p student.Profile) ModuleResolution {
	return ResolveModuleRequirement(c.School, c.MinModule, p.CurrentModule, c.modules)
}

func (c ModuleCriterion) Satisfied(p student.Profile) bool {
	return c.Resolve(p).Satisfied
}

type GenderCriterion struct {
	Gender string
}

func (GenderCriterion) Kind() Kind { return KindGender }

func (c GenderCriterion) Describe() string { return c.Gender + " candidates only" }

func (c GenderCriterion) Satisfied(p student.Profile) bool {
	return strings.EqualFold(strings.TrimSpace(p.Gender), c.Gender)
}

type AttendanceCriterion struct {
	MinPercentage float64
}

func (AttendanceCriterion) Kind() Kind { return KindAttendance }

func (c AttendanceCriterion) Describe() string {
	return fmt.Sprintf("attendance of at least %s%%", formatNumber(c.MinPercentage))
}

func (c AttendanceCriterion) Satisfied(p student.Profile) bool {
	return p.AttendancePercentage != nil && *p.AttendancePercentage >= c.MinPercentage
}

type TenureCriterion struct {
	MinMonths float64
}

func (TenureCriterion) Kind() Kind { return KindTenure }

func (c TenureCriterion) Describe() string {
	return fmt.Sprintf("at least %s months at the institution", formatNumber(c.MinMonths))
}

func (c TenureCriterion) Satisfied(p student.Profile) bool {
	return p.MonthsAtInstitution != nil && *p.MonthsAtInstitution >= c.MinMonths
}

type CertificationCriterion struct {
	Required []string
}

func (CertificationCriterion) Kind() Kind { return KindCertifications }

func (c CertificationCriterion) Describe() string {
	return "certifications: " + strings.Join(c.Required, ", ")
}

func (c CertificationCriterion) Satisfied(p student.Profile) bool {
	for _, want := range c.Required {
		if !containsFold(p.Certifications, want) {
			return false
		}
	}
	return true
}

// ProfileApprovalCriterion requires an approved profile at or before the
// shortlist deadline. Approved profiles without an approval timestamp
// predate the timestamp column and are accepted.
type ProfileApprovalCriterion struct {
	Deadline time.Time
}

func (ProfileApprovalCriterion) Kind() Kind { return KindProfileApproval }

func (c ProfileApprovalCriterion) Describe() string {
	return "profile approved by " + c.Deadline.UTC().Format(time.RFC3339)
}

func (c ProfileApprovalCriterion) Satisfied(p student.Profile) bool {
	if p.Status != student.StatusApproved {
		return false
	}
	return p.ApprovedAt == nil || !p.ApprovedAt.After(c.Deadline)
}

type SkillGateCriterion struct {
	Skill job.RequiredSkill
}

func (SkillGateCriterion) Kind() Kind { return KindSkill }

func (c SkillGateCriterion) Describe() string {
	return fmt.Sprintf("%s at level %d or above", skillLabel(c.Skill), SelfRatingOrdinal(c.Skill.ProficiencyLevel))
}

func (c SkillGateCriterion) Satisfied(p student.Profile) bool {
	return Meets(studentSkillLevel(p, c.Skill), SelfRatingOrdinal(c.Skill.ProficiencyLevel))
}

type EnglishGateCriterion struct {
	Channel Kind
	Level   string
}

func (c EnglishGateCriterion) Kind() Kind { return c.Channel }

func (c EnglishGateCriterion) Describe() string {
	return fmt.Sprintf("%s at %s or above", englishLabel(c.Channel), strings.ToUpper(strings.TrimSpace(c.Level)))
}

func (c EnglishGateCriterion) Satisfied(p student.Profile) bool {
	return Meets(studentEnglishLevel(p, c.Channel), CEFROrdinal(c.Level))
}

type SkillCriterion struct {
	Skill  job.RequiredSkill
	weight float64
}

func (SkillCriterion) Kind() Kind           { return KindSkill }
func (c SkillCriterion) Name() string       { return skillLabel(c.Skill) }
func (c SkillCriterion) RequiredLevel() int { return SelfRatingOrdinal(c.Skill.ProficiencyLevel) }
func (c SkillCriterion) Weight() float64    { return c.weight }

func (c SkillCriterion) Describe() string {
	return fmt.Sprintf("%s (level %d)", c.Name(), c.RequiredLevel())
}

func (c SkillCriterion) StudentLevel(p student.Profile) int {
	return studentSkillLevel(p, c.Skill)
}

type EnglishCriterion struct {
	Channel Kind
	Level   string
	weight  float64
}

func (c EnglishCriterion) Kind() Kind         { return c.Channel }
func (c EnglishCriterion) Name() string       { return englishLabel(c.Channel) }
func (c EnglishCriterion) RequiredLevel() int { return CEFROrdinal(c.Level) }
func (c EnglishCriterion) Weight() float64    { return c.weight }

func (c EnglishCriterion) Describe() string {
	return fmt.Sprintf("%s (%s)", c.Name(), strings.ToUpper(strings.TrimSpace(c.Level)))
}

func (c EnglishCriterion) StudentLevel(p student.Profile) int {
	return studentEnglishLevel(p, c.Channel)
}

func studentSkillLevel(p student.Profile, rs job.RequiredSkill) int {
	s, ok := p.Skill(rs.SkillID)
	if !ok {
		return 0
	}
	return ToOrdinal(s.SelfRating, ScaleSelfRating)
}

func studentEnglishLevel(p student.Profile, channel Kind) int {
	if channel == KindEnglishWriting {
		return ToOrdinal(p.English.Writing, ScaleCEFR)
	}
	return ToOrdinal(p.English.Speaking, ScaleCEFR)
}

func skillLabel(rs job.RequiredSkill) string {
	if name := strings.TrimSpace(rs.SkillName); name != "" {
		return name
	}
	return rs.SkillID.String()
}

func englishLabel(channel Kind) string {
	if channel == KindEnglishWriting {
		return "English writing"
	}
	return "English speaking"
}

func containsFold(haystack []string, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	for _, h := range haystack {
		if strings.EqualFold(strings.TrimSpace(h), needle) {
			return true
		}
	}
	return false
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
