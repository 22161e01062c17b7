package profile

import "github.com/dshills/ecocritic/internal/rules"

// lesson accepts any domain balance and has no critical domains: a single
// lesson usually targets one or two tasks.
func lesson() *Profile {
	r := rules.Default()
	r.CoverageMinimum = 0.05
	r.CoverageRecommended = 0.10
	r.DomainCoverageFloor = 0
	for key, b := range r.Distribution {
		r.Distribution[key] = rules.Band{Min: 0, Max: 1, Target: b.Target}
	}
	r.CriticalDomains = nil
	return &Profile{
		Name:        "lesson",
		Description: "a single lesson or video focused on a few tasks",
		Rules:       r,
	}
}
