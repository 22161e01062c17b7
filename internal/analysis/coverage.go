// Package analysis turns extracted tasks into coverage, distribution, score,
// and diagnostic output. Every function is a pure function of its inputs.
package analysis

import (
	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// Coverage measures how much of the outline the extracted tasks touch.
// Denominators come from the loaded taxonomy, so a replacement outline with
// different task counts is measured against its own size.
func Coverage(tax *taxonomy.Taxonomy, r rules.Rules, found schema.ExtractedTasks) schema.CoverageReport {
	covered := found.Total()
	pct := ratio(covered, tax.TaskCount())

	report := schema.CoverageReport{
		TotalTasksCovered:  covered,
		TotalTasks:         tax.TaskCount(),
		CoveragePercentage: pct,
		MeetsMinimum:       pct >= r.CoverageMinimum,
		MeetsRecommended:   pct >= r.CoverageRecommended,
		Domains:            make(map[taxonomy.DomainKey]schema.DomainCoverage, len(taxonomy.DomainOrder)),
	}
	for _, key := range taxonomy.DomainOrder {
		n := found.Count(key)
		total := tax.DomainTaskCount(key)
		report.Domains[key] = schema.DomainCoverage{
			Covered:    n,
			Total:      total,
			Percentage: ratio(n, total),
		}
	}
	return report
}

// ratio returns n/d, or 0 when d is zero.
func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
