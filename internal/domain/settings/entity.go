// Package settings holds the administrator-owned configuration that the
// eligibility engine reads as an immutable, versioned snapshot.
package settings

import "strings"

type ModuleKind string

const (
	// ModuleKindHierarchical schools progress linearly: completing module k
	// implies completing modules 0..k-1.
	ModuleKindHierarchical ModuleKind = "hierarchical"
	// ModuleKindTrack schools run mutually exclusive program tracks.
	ModuleKindTrack ModuleKind = "track"
)

type SchoolModules struct {
	Kind    ModuleKind `json:"kind"`
	Modules []string   `json:"modules"`
}

// IndexOf returns the position of module in the configured list, or -1.
func (s SchoolModules) IndexOf(module string) int {
	module = strings.TrimSpace(module)
	if module == "" {
		return -1
	}
	for i, m := range s.Modules {
		if strings.TrimSpace(m) == module {
			return i
		}
	}
	return -1
}

// SchoolModuleConfig is a snapshot; callers must not mutate it after handing
// it to the engine.
type SchoolModuleConfig struct {
	Version int64                    `json:"version"`
	Schools map[string]SchoolModules `json:"schools"`
}

// Lookup returns the module configuration for school, matching names the
// same way school membership does: trimmed and case-insensitive. Schools
// without an entry, or with an empty module list, are free-text schools.
func (c SchoolModuleConfig) Lookup(school string) (SchoolModules, bool) {
	school = strings.TrimSpace(school)
	if school == "" || c.Schools == nil {
		return SchoolModules{}, false
	}
	sm, ok := c.Schools[school]
	if !ok {
		for name, candidate := range c.Schools {
			if strings.EqualFold(strings.TrimSpace(name), school) {
				sm, ok = candidate, true
				break
			}
		}
	}
	if !ok || len(sm.Modules) == 0 {
		return SchoolModules{}, false
	}
	return sm, true
}
