package validator

import (
	"log/slog"

	"github.com/dshills/ecocritic/internal/extract"
	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger for the validator and taxonomy loading.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithTaxonomy uses tax instead of loading one from disk.
func WithTaxonomy(tax *taxonomy.Taxonomy) Option {
	return func(v *Validator) {
		v.tax = tax
	}
}

// WithTaxonomyPath sets the file a replacement outline is loaded from.
// It is ignored when WithTaxonomy is also given.
func WithTaxonomyPath(path string) Option {
	return func(v *Validator) {
		v.taxonomyPath = path
	}
}

// WithRules replaces the default thresholds.
func WithRules(r rules.Rules) Option {
	return func(v *Validator) {
		v.rules = r.Clone()
	}
}

// WithKeywords replaces the built-in keyword table.
func WithKeywords(table extract.Table) Option {
	return func(v *Validator) {
		v.keywords = table
	}
}
