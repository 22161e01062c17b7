package profile

import (
	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// strict narrows each band halfway toward the domain's share of the built-in
// outline, so content covering the whole outline is still balanced.
func strict() *Profile {
	r := rules.Default()
	r.CoverageMinimum = 0.90
	r.CoverageRecommended = 1.0
	r.DomainCoverageFloor = 0.50

	tax := taxonomy.Default()
	total := float64(tax.TaskCount())
	for key, b := range r.Distribution {
		share := float64(tax.DomainTaskCount(key)) / total
		r.Distribution[key] = rules.Band{
			Min:    share - (share-b.Min)/2,
			Max:    share + (b.Max-share)/2,
			Target: b.Target,
		}
	}
	return &Profile{
		Name:        "strict",
		Description: "a full course held to near-complete coverage and a balance close to the outline's own",
		Rules:       r,
	}
}
