package eligibility

import (
	"math"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/student"
)

type MatchDetail struct {
	CriterionName string  `json:"criterion_name"`
	Kind          Kind    `json:"kind"`
	RequiredLevel int     `json:"required_level"`
	StudentLevel  int     `json:"student_level"`
	Matched       bool    `json:"matched"`
	Credit        float64 `json:"credit"`
}

type Match struct {
	OverallPercentage int           `json:"overall_percentage"`
	Details           []MatchDetail `json:"details"`
}

// Score grades the soft criteria. Only criteria with a non-zero required
// level and a positive weight enter the average; with none, the match is 100.
// Callers must only score students that passed Evaluate.
func Score(p student.Profile, soft []SoftCriterion) Match {
	details := make([]MatchDetail, 0, len(soft))

	var weighted float64
	var totalWeight float64
	for _, sc := range soft {
		reqLvl := sc.RequiredLevel()
		usrLvl := sc.StudentLevel(p)

		credit := 1.0
		if reqLvl > 0 {
			credit = math.Min(float64(usrLvl)/float64(reqLvl), 1)
			if w := sc.Weight(); w > 0 {
				weighted += w * credit
				totalWeight += w
			}
		}

		details = append(details, MatchDetail{
			CriterionName: sc.Name(),
			Kind:          sc.Kind(),
			RequiredLevel: reqLvl,
			StudentLevel:  usrLvl,
			Matched:       Meets(usrLvl, reqLvl),
			Credit:        credit,
		})
	}

	overall := 100
	if totalWeight > 0 {
		overall = clampInt(int(math.Round(100*weighted/totalWeight)), 0, 100)
	}

	return Match{OverallPercentage: overall, Details: details}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
