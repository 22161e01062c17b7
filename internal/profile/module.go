package profile

import "github.com/dshills/ecocritic/internal/rules"

// module expects roughly a third of the outline with the usual balance.
func module() *Profile {
	r := rules.Default()
	r.CoverageMinimum = 0.30
	r.CoverageRecommended = 0.50
	r.DomainCoverageFloor = 0.10
	return &Profile{
		Name:        "module",
		Description: "a course module spanning several tasks",
		Rules:       r,
	}
}
