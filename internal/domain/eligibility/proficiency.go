package eligibility

import (
	"math"
	"strconv"
	"strings"
)

type Scale int

const (
	// ScaleSelfRating is the 0-4 student self-rating; 0 means not claimed.
	ScaleSelfRating Scale = iota
	// ScaleCEFR is the A1..C2 language scale mapped onto 1..6.
	ScaleCEFR
)

const MaxSelfRating = 4

var cefrOrdinals = map[string]int{
	"A1": 1,
	"A2": 2,
	"B1": 3,
	"B2": 4,
	"C1": 5,
	"C2": 6,
}

// ToOrdinal converts a rating in the given scale to a comparable integer.
// Anything it does not recognise resolves to 0.
func ToOrdinal(value any, scale Scale) int {
	switch scale {
	case ScaleSelfRating:
		return selfRatingFromAny(value)
	case ScaleCEFR:
		s, ok := value.(string)
		if !ok {
			return 0
		}
		return CEFROrdinal(s)
	default:
		return 0
	}
}

func SelfRatingOrdinal(v int) int {
	if v < 0 || v > MaxSelfRating {
		return 0
	}
	return v
}

func CEFROrdinal(code string) int {
	return cefrOrdinals[strings.ToUpper(strings.TrimSpace(code))]
}

// Meets reports whether a student ordinal satisfies a required ordinal.
// A required ordinal of 0 is "no requirement".
func Meets(studentOrdinal, requiredOrdinal int) bool {
	return requiredOrdinal <= 0 || studentOrdinal >= requiredOrdinal
}

func MeetsCEFR(studentCode, requiredCode string) bool {
	return Meets(CEFROrdinal(studentCode), CEFROrdinal(requiredCode))
}

func selfRatingFromAny(value any) int {
	switch v := value.(type) {
	case int:
		return SelfRatingOrdinal(v)
	case int16:
		return SelfRatingOrdinal(int(v))
	case int32:
		return SelfRatingOrdinal(int(v))
	case int64:
		if v < 0 || v > MaxSelfRating {
			return 0
		}
		return int(v)
	case float64:
		if math.IsNaN(v) || v < 0 || v > MaxSelfRating || v != math.Trunc(v) {
			return 0
		}
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return SelfRatingOrdinal(n)
	default:
		return 0
	}
}
