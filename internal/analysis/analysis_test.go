package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

func tasks(t *testing.T, tax *taxonomy.Taxonomy, ids ...string) schema.ExtractedTasks {
	t.Helper()
	found := schema.NewExtractedTasks()
	for _, id := range ids {
		key, ok := tax.DomainOf(id)
		require.True(t, ok, "unknown task %s", id)
		found.Add(key, id)
	}
	return found
}

func allIDs() []string {
	ids := make([]string, 0, 27)
	for n := 1; n <= 27; n++ {
		ids = append(ids, fmt.Sprintf("T%d", n))
	}
	return ids
}

// --- Coverage ---

func TestCoverage_TwoTasks(t *testing.T) {
	tax := taxonomy.Default()
	cov := Coverage(tax, rules.Default(), tasks(t, tax, "T1", "T13"))

	assert.Equal(t, 2, cov.TotalTasksCovered)
	assert.Equal(t, 27, cov.TotalTasks)
	assert.InDelta(t, 2.0/27.0, cov.CoveragePercentage, 1e-9)
	assert.False(t, cov.MeetsMinimum)
	assert.False(t, cov.MeetsRecommended)
	assert.Equal(t, schema.DomainCoverage{Covered: 1, Total: 10, Percentage: 0.1}, cov.Domains[taxonomy.People])
	assert.Equal(t, 13, cov.Domains[taxonomy.Process].Total)
	assert.Equal(t, 0, cov.Domains[taxonomy.Business].Covered)
}

func TestCoverage_Full(t *testing.T) {
	tax := taxonomy.Default()
	cov := Coverage(tax, rules.Default(), tasks(t, tax, allIDs()...))

	assert.Equal(t, 1.0, cov.CoveragePercentage)
	assert.True(t, cov.MeetsMinimum)
	assert.True(t, cov.MeetsRecommended)
}

func TestCoverage_Thresholds(t *testing.T) {
	tax := taxonomy.Default()
	// 22/27 = 0.815 clears the minimum but not the recommended 0.95.
	cov := Coverage(tax, rules.Default(), tasks(t, tax, allIDs()[:22]...))
	assert.True(t, cov.MeetsMinimum)
	assert.False(t, cov.MeetsRecommended)
}

// --- Distribution ---

func TestDistribution_NothingCovered(t *testing.T) {
	tax := taxonomy.Default()
	dist := Distribution(tax, rules.Default(), schema.NewExtractedTasks())

	assert.False(t, dist.IsValid)
	assert.Equal(t, []string{NoTasksIssue}, dist.Issues)
	assert.Empty(t, dist.Distributions)
}

func TestDistribution_AllTasksWithinBands(t *testing.T) {
	tax := taxonomy.Default()
	dist := Distribution(tax, rules.Default(), tasks(t, tax, allIDs()...))

	assert.True(t, dist.IsValid)
	assert.Empty(t, dist.Issues)
	assert.InDelta(t, 10.0/27, dist.Distributions[taxonomy.People], 1e-9)
	assert.InDelta(t, 13.0/27, dist.Distributions[taxonomy.Process], 1e-9)
	assert.InDelta(t, 4.0/27, dist.Distributions[taxonomy.Business], 1e-9)
}

func TestDistribution_SharesSumToOne(t *testing.T) {
	tax := taxonomy.Default()
	dist := Distribution(tax, rules.Default(), tasks(t, tax, "T2", "T3", "T15", "T25", "T27"))

	sum := 0.0
	for _, v := range dist.Distributions {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestDistribution_ChecksEveryDomain(t *testing.T) {
	tax := taxonomy.Default()
	// People only: people above its band, process and business below theirs.
	dist := Distribution(tax, rules.Default(), tasks(t, tax, "T1"))

	assert.False(t, dist.IsValid)
	require.Len(t, dist.Issues, 3)
	assert.Equal(t, "People domain distribution is 100.0% (acceptable range: 35%-50%)", dist.Issues[0])
	assert.Equal(t, "Process domain distribution is 0.0% (acceptable range: 40%-60%)", dist.Issues[1])
	assert.Equal(t, "Business Environment domain distribution is 0.0% (acceptable range: 5%-15%)", dist.Issues[2])
}

func TestDistribution_BandEdgesInclusive(t *testing.T) {
	tax := taxonomy.Default()
	// people 1/2 = 0.50 (upper edge), process 1/2 = 0.50, business 0.
	dist := Distribution(tax, rules.Default(), tasks(t, tax, "T1", "T13"))

	require.Len(t, dist.Issues, 1)
	assert.Contains(t, dist.Issues[0], "Business Environment")
}

// --- Score ---

func TestScore_FullCoverage(t *testing.T) {
	tax := taxonomy.Default()
	r := rules.Default()
	found := tasks(t, tax, allIDs()...)

	score := Score(r, Coverage(tax, r, found), Distribution(tax, r, found))
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.True(t, Passes(r, score))
}

func TestScore_PartialDistributionCredit(t *testing.T) {
	tax := taxonomy.Default()
	r := rules.Default()
	found := tasks(t, tax, "T1", "T13")

	score := Score(r, Coverage(tax, r, found), Distribution(tax, r, found))
	// coverage 2/27*0.7; distribution mean(0.92, 1.0, 0.92)*0.3
	want := 2.0/27*0.7 + (0.92+1.0+0.92)/3*0.3
	assert.InDelta(t, want, score, 1e-9)
	assert.False(t, Passes(r, score))
}

func TestScore_NothingCovered(t *testing.T) {
	tax := taxonomy.Default()
	r := rules.Default()
	found := schema.NewExtractedTasks()

	score := Score(r, Coverage(tax, r, found), Distribution(tax, r, found))
	// Missing shares count as 0: mean(0.58, 0.5, 0.92)*0.3 = 0.2
	assert.InDelta(t, 0.2, score, 1e-9)
}

func TestScore_Clamped(t *testing.T) {
	r := rules.Default().Clone()
	r.CoverageWeight = 1
	r.DistributionWeight = 1

	score := Score(r, schema.CoverageReport{CoveragePercentage: 1}, schema.DistributionReport{IsValid: true})
	assert.Equal(t, 1.0, score)
}

func TestPasses_UsesCoverageMinimum(t *testing.T) {
	r := rules.Default()
	assert.True(t, Passes(r, 0.8))
	assert.False(t, Passes(r, 0.7999))
}

// --- Issues and recommendations ---

func TestIssues_LowCoverageAndDistribution(t *testing.T) {
	tax := taxonomy.Default()
	r := rules.Default()
	found := tasks(t, tax, "T1", "T13")

	issues := Issues(tax, r, Coverage(tax, r, found), Distribution(tax, r, found))
	assert.Equal(t, []string{
		"ECO task coverage too low: 7.4% (minimum required: 80%)",
		"Business Environment domain distribution is 0.0% (acceptable range: 5%-15%)",
	}, issues)
}

func TestIssues_CriticalGapsPeopleAndProcessOnly(t *testing.T) {
	tax := taxonomy.Default()
	r := rules.Default()
	found := schema.NewExtractedTasks()

	issues := Issues(tax, r, Coverage(tax, r, found), Distribution(tax, r, found))
	assert.Contains(t, issues, NoTasksIssue)
	assert.Contains(t, issues, "Critical gap: no People domain tasks covered")
	assert.Contains(t, issues, "Critical gap: no Process domain tasks covered")
	for _, issue := range issues {
		assert.NotContains(t, issue, "Critical gap: no Business")
	}
}

func TestRecommendations_LowCoverage(t *testing.T) {
	tax := taxonomy.Default()
	r := rules.Default()
	found := tasks(t, tax, "T1", "T13")

	recs := Recommendations(tax, r, Coverage(tax, r, found), Distribution(tax, r, found))
	assert.Equal(t, []string{
		"Increase ECO task coverage to at least 95% (currently 7.4%)",
		"Add more People domain content (currently 10.0% of its tasks covered)",
		"Add more Process domain content (currently 7.7% of its tasks covered)",
		"Add more Business Environment domain content (currently 0.0% of its tasks covered)",
		"Add compliance and benefits realization content (Business Environment domain)",
	}, recs)
}

func TestRecommendations_DomainFocusWhenEmpty(t *testing.T) {
	tax := taxonomy.Default()
	r := rules.Default()
	found := schema.NewExtractedTasks()

	recs := Recommendations(tax, r, Coverage(tax, r, found), Distribution(tax, r, found))
	assert.Contains(t, recs, "Add leadership and stakeholder collaboration content (People domain)")
	assert.Contains(t, recs, "Add planning and risk management content (Process domain)")
	assert.Contains(t, recs, "Add compliance and benefits realization content (Business Environment domain)")
}

// --- Suggest ---

func TestSuggest_PeopleOnly(t *testing.T) {
	tax := taxonomy.Default()
	got := Suggest(tax, tasks(t, tax, "T1"), rules.Default().Targets(), 0)

	require.Len(t, got, 2)

	assert.Equal(t, taxonomy.Process, got[0].Domain)
	assert.Equal(t, 0.0, got[0].CurrentPercentage)
	assert.Equal(t, 0.5, got[0].TargetPercentage)
	assert.InDelta(t, 0.5, got[0].Gap, 1e-9)
	assert.Equal(t, []string{"T11", "T12", "T13"}, ids(got[0].SuggestedTasks))

	assert.Equal(t, taxonomy.Business, got[1].Domain)
	assert.InDelta(t, 0.08, got[1].Gap, 1e-9)
	assert.Equal(t, []string{"T24", "T25", "T26"}, ids(got[1].SuggestedTasks))
}

func TestSuggest_NothingCoveredNoNaN(t *testing.T) {
	tax := taxonomy.Default()
	got := Suggest(tax, schema.NewExtractedTasks(), rules.Default().Targets(), 0)

	require.Len(t, got, 3)
	for _, s := range got {
		assert.Equal(t, 0.0, s.CurrentPercentage)
		assert.Equal(t, s.TargetPercentage, s.Gap)
	}
}

func TestSuggest_SkipsCoveredTasksAndHonoursLimit(t *testing.T) {
	tax := taxonomy.Default()
	found := tasks(t, tax, "T1", "T2", "T3", "T4", "T5", "T11", "T24")
	got := Suggest(tax, found, map[taxonomy.DomainKey]float64{taxonomy.Process: 0.9}, 2)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"T12", "T13"}, ids(got[0].SuggestedTasks))
}

func ids(ts []taxonomy.Task) []string {
	out := make([]string, len(ts))
	for i, task := range ts {
		out[i] = task.ID
	}
	return out
}
