package analysis

import (
	"math"

	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// Score combines coverage and distribution into a value in [0, 1].
//
// Coverage contributes coverage*CoverageWeight. A valid distribution
// contributes the full DistributionWeight; an invalid one earns partial
// credit: the mean over domains of 1-|share-target|, times the weight.
// Domains without a share (nothing covered) count as share 0.
func Score(r rules.Rules, cov schema.CoverageReport, dist schema.DistributionReport) float64 {
	score := cov.CoveragePercentage * r.CoverageWeight

	if dist.IsValid {
		score += r.DistributionWeight
	} else {
		score += partialDistributionCredit(r, dist) * r.DistributionWeight
	}

	return clamp(score)
}

// Passes reports whether score clears the pass bar. The bar is the coverage
// minimum; there is no separate overall threshold.
func Passes(r rules.Rules, score float64) bool {
	return score >= r.CoverageMinimum
}

func partialDistributionCredit(r rules.Rules, dist schema.DistributionReport) float64 {
	if len(taxonomy.DomainOrder) == 0 {
		return 0
	}
	sum := 0.0
	for _, key := range taxonomy.DomainOrder {
		actual := dist.Distributions[key]
		sum += 1 - math.Abs(actual-r.Distribution[key].Target)
	}
	return sum / float64(len(taxonomy.DomainOrder))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
