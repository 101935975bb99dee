package eligibility

import (
	"strings"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/settings"
)

type ModuleRequirementType string

const (
	ModuleHierarchical ModuleRequirementType = "hierarchical"
	ModuleTrack        ModuleRequirementType = "track"
	ModuleInapplicable ModuleRequirementType = "inapplicable"
)

type ModuleResolution struct {
	Type      ModuleRequirementType `json:"type"`
	Satisfied bool                  `json:"satisfied"`
}

// ResolveModuleRequirement checks a student's current module against a job's
// minimum module for one school.
//
// Schools without module configuration never restrict. Hierarchical schools
// compare positions in the ordered curriculum; a student module that is not in
// the curriculum (including an empty one) does not satisfy. Track schools
// require the exact track.
func ResolveModuleRequirement(school, requiredModule, studentModule string, cfg settings.SchoolModuleConfig) ModuleResolution {
	requiredModule = strings.TrimSpace(requiredModule)
	sm, ok := cfg.Lookup(school)
	if !ok || requiredModule == "" {
		return ModuleResolution{Type: ModuleInapplicable, Satisfied: true}
	}

	if sm.Kind == settings.ModuleKindTrack {
		return ModuleResolution{
			Type:      ModuleTrack,
			Satisfied: sm.IndexOf(studentModule) >= 0 && strings.TrimSpace(studentModule) == requiredModule,
		}
	}

	reqIdx := sm.IndexOf(requiredModule)
	gotIdx := sm.IndexOf(studentModule)
	return ModuleResolution{
		Type:      ModuleHierarchical,
		Satisfied: reqIdx >= 0 && gotIdx >= 0 && gotIdx >= reqIdx,
	}
}
