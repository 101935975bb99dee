package eligibility

import (
	"math"
	"testing"
)

func TestCEFROrdinal(t *testing.T) {
	cases := map[string]int{
		"A1": 1, "A2": 2, "B1": 3, "B2": 4, "C1": 5, "C2": 6,
		" b2 ": 4, "c2": 6,
		"": 0, "D1": 0, "B3": 0, "fluent": 0,
	}
	for in, want := range cases {
		if got := CEFROrdinal(in); got != want {
			t.Errorf("CEFROrdinal(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestMeetsCEFR_Ordering(t *testing.T) {
	if !MeetsCEFR("B2", "B1") {
		t.Fatalf("B2 should meet B1")
	}
	if MeetsCEFR("A1", "C1") {
		t.Fatalf("A1 should not meet C1")
	}
	for _, s := range []string{"", "A1", "A2", "B1", "B2", "C1", "C2", "garbage"} {
		if !MeetsCEFR(s, "") {
			t.Errorf("empty requirement must be satisfied by %q", s)
		}
	}
	if MeetsCEFR("garbage", "A1") {
		t.Fatalf("unrecognised student level must not meet a real requirement")
	}
}

func TestToOrdinal_SelfRating(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{0, 0},
		{3, 3},
		{4, 4},
		{5, 0},
		{-1, 0},
		{int16(2), 2},
		{int64(4), 4},
		{float64(2), 2},
		{2.5, 0},
		{math.NaN(), 0},
		{"3", 3},
		{"three", 0},
		{nil, 0},
		{[]int{1}, 0},
	}
	for _, tc := range cases {
		if got := ToOrdinal(tc.in, ScaleSelfRating); got != tc.want {
			t.Errorf("ToOrdinal(%v, self) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestToOrdinal_CEFRRejectsNonStrings(t *testing.T) {
	if got := ToOrdinal(4, ScaleCEFR); got != 0 {
		t.Fatalf("expected 0 for numeric CEFR input, got %d", got)
	}
	if got := ToOrdinal("C1", ScaleCEFR); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := ToOrdinal("C1", Scale(99)); got != 0 {
		t.Fatalf("expected 0 for unknown scale, got %d", got)
	}
}

func TestMeets_ZeroRequirement(t *testing.T) {
	for s := 0; s <= MaxSelfRating; s++ {
		if !Meets(s, 0) {
			t.Errorf("Meets(%d, 0) should be true", s)
		}
	}
	if Meets(2, 3) {
		t.Fatalf("Meets(2, 3) should be false")
	}
	if !Meets(3, 3) {
		t.Fatalf("Meets(3, 3) should be true")
	}
}
