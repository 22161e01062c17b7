package analysis

import (
	"fmt"

	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// domainFocus names the task categories to add when a domain's share falls
// below its band.
var domainFocus = map[taxonomy.DomainKey]string{
	taxonomy.People:   "leadership and stakeholder collaboration",
	taxonomy.Process:  "planning and risk management",
	taxonomy.Business: "compliance and benefits realization",
}

// Issues lists the problems behind a failing result: low coverage, every
// distribution issue, and critical domains with nothing covered.
func Issues(tax *taxonomy.Taxonomy, r rules.Rules, cov schema.CoverageReport, dist schema.DistributionReport) []string {
	issues := []string{}

	if !cov.MeetsMinimum {
		issues = append(issues, fmt.Sprintf(
			"ECO task coverage too low: %.1f%% (minimum required: %s)",
			cov.CoveragePercentage*100, percent(r.CoverageMinimum)))
	}

	issues = append(issues, dist.Issues...)

	for _, key := range r.CriticalDomains {
		if cov.Domains[key].Covered == 0 {
			issues = append(issues, fmt.Sprintf("Critical gap: no %s domain tasks covered", tax.DomainName(key)))
		}
	}
	return issues
}

// Recommendations lists concrete actions for a failing result.
func Recommendations(tax *taxonomy.Taxonomy, r rules.Rules, cov schema.CoverageReport, dist schema.DistributionReport) []string {
	recs := []string{}

	if !cov.MeetsRecommended {
		recs = append(recs, fmt.Sprintf(
			"Increase ECO task coverage to at least %s (currently %.1f%%)",
			percent(r.CoverageRecommended), cov.CoveragePercentage*100))
	}

	for _, key := range taxonomy.DomainOrder {
		dc := cov.Domains[key]
		if dc.Percentage < r.DomainCoverageFloor {
			recs = append(recs, fmt.Sprintf(
				"Add more %s domain content (currently %.1f%% of its tasks covered)",
				tax.DomainName(key), dc.Percentage*100))
		}
	}

	if !dist.IsValid {
		for _, key := range taxonomy.DomainOrder {
			if dist.Distributions[key] < r.Distribution[key].Min {
				recs = append(recs, fmt.Sprintf("Add %s content (%s domain)", domainFocus[key], tax.DomainName(key)))
			}
		}
	}
	return recs
}
