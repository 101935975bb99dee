package settings

import "testing"

func TestSchoolModuleConfig_Lookup(t *testing.T) {
	cfg := SchoolModuleConfig{Schools: map[string]SchoolModules{
		"School of Programming": {Kind: ModuleKindHierarchical, Modules: []string{"Foundations", "Advanced"}},
		" School of Business ":  {Kind: ModuleKindHierarchical, Modules: []string{"Basics"}},
		"School of Design":      {Kind: ModuleKindTrack},
	}}

	cases := []struct {
		school string
		found  bool
	}{
		{"School of Programming", true},
		{"school of programming", true},
		{"  SCHOOL OF PROGRAMMING ", true},
		{"school of business", true},
		{"School of Design", false},
		{"School of Finance", false},
		{"", false},
	}
	for _, tc := range cases {
		_, ok := cfg.Lookup(tc.school)
		if ok != tc.found {
			t.Fatalf("Lookup(%q) found=%v, want %v", tc.school, ok, tc.found)
		}
	}

	sm, _ := cfg.Lookup("school of programming")
	if sm.IndexOf("Advanced") != 1 {
		t.Fatalf("expected programming curriculum, got %+v", sm)
	}
}
