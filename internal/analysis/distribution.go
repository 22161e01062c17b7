package analysis

import (
	"fmt"
	"math"

	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// NoTasksIssue is reported when content references no outline task at all.
const NoTasksIssue = "No ECO tasks identified in content"

// Distribution checks each domain's share of the covered tasks against its
// band. Shares are fractions of covered tasks, not of the whole outline.
// All domains are checked; one issue is recorded per out-of-band domain.
func Distribution(tax *taxonomy.Taxonomy, r rules.Rules, found schema.ExtractedTasks) schema.DistributionReport {
	report := schema.DistributionReport{
		IsValid:       true,
		Distributions: map[taxonomy.DomainKey]float64{},
		Issues:        []string{},
	}

	total := found.Total()
	if total == 0 {
		report.IsValid = false
		report.Issues = append(report.Issues, NoTasksIssue)
		return report
	}

	for _, key := range taxonomy.DomainOrder {
		share := ratio(found.Count(key), total)
		report.Distributions[key] = share

		band := r.Distribution[key]
		if !band.Contains(share) {
			report.IsValid = false
			report.Issues = append(report.Issues, fmt.Sprintf(
				"%s domain distribution is %.1f%% (acceptable range: %s-%s)",
				tax.DomainName(key), share*100, percent(band.Min), percent(band.Max)))
		}
	}
	return report
}

// percent formats a fraction as a whole or one-decimal percentage.
func percent(f float64) string {
	p := f * 100
	if r := math.Round(p); math.Abs(p-r) < 1e-9 {
		return fmt.Sprintf("%d%%", int64(r))
	}
	return fmt.Sprintf("%.1f%%", p)
}
