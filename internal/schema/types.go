package schema

import (
	"strings"

	"github.com/dshills/ecocritic/internal/taxonomy"
)

// Content is a single piece of authored material submitted for validation.
// Absent text fields are simply left empty and contribute nothing.
type Content struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	Script      string   `json:"script,omitempty"`
	Objectives  []string `json:"objectives,omitempty"`
	KeyPoints   []string `json:"key_points,omitempty"`
}

// Text joins every text-bearing field with single spaces, in the order
// title, description, content, script, objectives, key points. Empty fields
// are skipped. The original case is preserved.
func (c *Content) Text() string {
	parts := make([]string, 0, 6)
	for _, s := range []string{
		c.Title,
		c.Description,
		c.Content,
		c.Script,
		strings.Join(c.Objectives, " "),
		strings.Join(c.KeyPoints, " "),
	} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ExtractedTasks maps each domain to the task IDs found for it, in the order
// they were first matched and without duplicates.
type ExtractedTasks map[taxonomy.DomainKey][]string

// NewExtractedTasks returns a set with an empty (non-nil) list per domain.
func NewExtractedTasks() ExtractedTasks {
	e := make(ExtractedTasks, len(taxonomy.DomainOrder))
	for _, key := range taxonomy.DomainOrder {
		e[key] = []string{}
	}
	return e
}

// Add appends id under domain unless it is already present anywhere.
// It reports whether the set changed.
func (e ExtractedTasks) Add(domain taxonomy.DomainKey, id string) bool {
	if e.Has(id) {
		return false
	}
	e[domain] = append(e[domain], id)
	return true
}

// Has reports whether id is present under any domain.
func (e ExtractedTasks) Has(id string) bool {
	for _, ids := range e {
		for _, x := range ids {
			if x == id {
				return true
			}
		}
	}
	return false
}

// Count returns the number of task IDs under domain.
func (e ExtractedTasks) Count(domain taxonomy.DomainKey) int {
	return len(e[domain])
}

// Total returns the number of task IDs across all domains.
func (e ExtractedTasks) Total() int {
	n := 0
	for _, ids := range e {
		n += len(ids)
	}
	return n
}

// DomainCoverage is the covered share of one domain's tasks.
type DomainCoverage struct {
	Covered    int     `json:"covered"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// CoverageReport quantifies how much of the outline the content touches.
type CoverageReport struct {
	TotalTasksCovered  int                                   `json:"total_tasks_covered"`
	TotalTasks         int                                   `json:"total_tasks"`
	CoveragePercentage float64                               `json:"coverage_percentage"`
	MeetsMinimum       bool                                  `json:"meets_minimum"`
	MeetsRecommended   bool                                  `json:"meets_recommended"`
	Domains            map[taxonomy.DomainKey]DomainCoverage `json:"domains"`
}

// DistributionReport compares each domain's share of covered tasks with its
// configured band. Distributions is empty when nothing was covered.
type DistributionReport struct {
	IsValid       bool                           `json:"is_valid"`
	Distributions map[taxonomy.DomainKey]float64 `json:"distributions"`
	Issues        []string                       `json:"issues"`
}

// Details carries intermediate data useful for debugging a result.
type Details struct {
	ExtractedTasks ExtractedTasks `json:"extracted_tasks"`
}

// ValidationResult is the outcome of validating one Content.
type ValidationResult struct {
	ContentID       string             `json:"content_id"`
	ContentType     string             `json:"content_type"`
	IsValid         bool               `json:"is_valid"`
	Score           float64            `json:"score"`
	Coverage        CoverageReport     `json:"coverage"`
	Distribution    DistributionReport `json:"distribution"`
	Issues          []string           `json:"issues"`
	Recommendations []string           `json:"recommendations"`
	Details         Details            `json:"details"`
}

// DomainSuggestion names uncovered tasks that would move a domain toward
// its target share.
type DomainSuggestion struct {
	Domain            taxonomy.DomainKey `json:"domain"`
	CurrentPercentage float64            `json:"current_percentage"`
	TargetPercentage  float64            `json:"target_percentage"`
	Gap               float64            `json:"gap"`
	SuggestedTasks    []taxonomy.Task    `json:"suggested_tasks"`
}
