// Package validator classifies content against the exam content outline and
// scores it for coverage and domain balance.
package validator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/ecocritic/internal/analysis"
	"github.com/dshills/ecocritic/internal/extract"
	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// taskExtractor finds the outline tasks a piece of content references.
type taskExtractor interface {
	Extract(c *schema.Content) schema.ExtractedTasks
}

// Validator holds a taxonomy, rules, and keyword table, all read-only after
// New returns. A Validator is safe for concurrent use.
type Validator struct {
	tax          *taxonomy.Taxonomy
	taxonomyPath string
	rules        rules.Rules
	keywords     extract.Table
	extractor    taskExtractor
	logger       *slog.Logger
}

// New builds a Validator. Without WithTaxonomy the outline is loaded from
// the configured path (taxonomy.DefaultPath by default), falling back to the
// built-in outline.
func New(opts ...Option) *Validator {
	v := &Validator{rules: rules.Default()}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if v.tax == nil {
		v.tax = taxonomy.LoadOrDefault(v.taxonomyPath, v.logger)
	}
	v.extractor = extract.New(v.tax, v.keywords)
	return v
}

// Taxonomy returns the outline in use.
func (v *Validator) Taxonomy() *taxonomy.Taxonomy { return v.tax }

// Rules returns a copy of the thresholds in use.
func (v *Validator) Rules() rules.Rules { return v.rules.Clone() }

// Extract returns the tasks referenced by c.
func (v *Validator) Extract(c *schema.Content) schema.ExtractedTasks {
	return v.extractor.Extract(c)
}

// Validate scores c. It never fails: any internal error or panic yields a
// result with IsValid false and a single "Validation error: ..." issue.
func (v *Validator) Validate(c *schema.Content) (res *schema.ValidationResult) {
	res = newResult(c)

	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("validation panicked", "content_id", res.ContentID, "panic", r)
			res = failed(res, fmt.Errorf("%v", r))
		}
	}()

	if err := v.validate(c, res); err != nil {
		v.logger.Warn("validation failed", "content_id", res.ContentID, "error", err)
		return failed(res, err)
	}

	v.logger.Debug("validated content",
		"content_id", res.ContentID,
		"score", res.Score,
		"tasks", res.Coverage.TotalTasksCovered,
		"valid", res.IsValid)
	return res
}

func (v *Validator) validate(c *schema.Content, res *schema.ValidationResult) error {
	if c == nil {
		return errors.New("content is nil")
	}

	found := v.extractor.Extract(c)
	cov := analysis.Coverage(v.tax, v.rules, found)
	dist := analysis.Distribution(v.tax, v.rules, found)
	score := analysis.Score(v.rules, cov, dist)

	res.Score = score
	res.IsValid = analysis.Passes(v.rules, score)
	res.Coverage = cov
	res.Distribution = dist
	res.Details.ExtractedTasks = found

	if !res.IsValid {
		res.Issues = append(res.Issues, analysis.Issues(v.tax, v.rules, cov, dist)...)
		res.Recommendations = append(res.Recommendations, analysis.Recommendations(v.tax, v.rules, cov, dist)...)
	}
	return nil
}

// SuggestTasksForImprovement proposes uncovered tasks for domains below
// target. targets overrides the rule targets per domain; nil uses them all.
func (v *Validator) SuggestTasksForImprovement(found schema.ExtractedTasks, targets map[taxonomy.DomainKey]float64) []schema.DomainSuggestion {
	merged := v.rules.Targets()
	for k, t := range targets {
		merged[k] = t
	}
	if found == nil {
		found = schema.NewExtractedTasks()
	}
	return analysis.Suggest(v.tax, found, merged, analysis.DefaultSuggestionLimit)
}

// GetTaskDetails returns the task with id, or nil if the outline has none.
func (v *Validator) GetTaskDetails(id string) *taxonomy.DomainTask {
	t, ok := v.tax.Task(id)
	if !ok {
		return nil
	}
	return &t
}

// GetAllTasks returns every task in domain then declaration order.
func (v *Validator) GetAllTasks() []taxonomy.DomainTask {
	return v.tax.AllTasks()
}

func newResult(c *schema.Content) *schema.ValidationResult {
	res := &schema.ValidationResult{
		Coverage: schema.CoverageReport{
			Domains: map[taxonomy.DomainKey]schema.DomainCoverage{},
		},
		Distribution: schema.DistributionReport{
			Distributions: map[taxonomy.DomainKey]float64{},
			Issues:        []string{},
		},
		Issues:          []string{},
		Recommendations: []string{},
		Details:         schema.Details{ExtractedTasks: schema.NewExtractedTasks()},
	}
	if c != nil {
		res.ContentID = c.ID
		res.ContentType = c.Type
	}
	return res
}

// failed marks res invalid with a single validation error issue, discarding
// anything collected before the failure. The score is reset so IsValid stays
// consistent with the pass bar.
func failed(res *schema.ValidationResult, err error) *schema.ValidationResult {
	res.IsValid = false
	res.Score = 0
	res.Issues = []string{"Validation error: " + err.Error()}
	res.Recommendations = []string{}
	return res
}
