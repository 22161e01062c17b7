// Package extract finds outline task references in free-form content.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// taskIDPattern matches explicit references such as "T1" or "T27". The
// literal T is case-sensitive.
var taskIDPattern = regexp.MustCompile(`T(\d+)`)

// Extractor maps content text to task IDs using explicit references and a
// keyword table. It holds only read-only data and is safe for concurrent use.
type Extractor struct {
	tax      *taxonomy.Taxonomy
	keywords Table
}

// New returns an Extractor over tax. A nil table means DefaultKeywords.
func New(tax *taxonomy.Taxonomy, keywords Table) *Extractor {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	return &Extractor{tax: tax, keywords: keywords}
}

// Extract runs the explicit-ID pass and then the keyword pass over c.
// Task IDs unknown to the taxonomy are dropped.
func (e *Extractor) Extract(c *schema.Content) schema.ExtractedTasks {
	found := schema.NewExtractedTasks()
	text := c.Text()

	e.explicitIDs(text, found)
	e.keywordMatches(strings.ToLower(text), found)

	return found
}

// explicitIDs scans the original-case text for T<n> tokens.
func (e *Extractor) explicitIDs(text string, found schema.ExtractedTasks) {
	for _, m := range taskIDPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		id := fmt.Sprintf("T%d", n)
		domain, ok := e.tax.DomainOf(id)
		if !ok {
			continue
		}
		found.Add(domain, id)
	}
}

// keywordMatches adds every task whose keywords appear in the lowercase text.
func (e *Extractor) keywordMatches(lower string, found schema.ExtractedTasks) {
	if lower == "" {
		return
	}
	for _, group := range e.keywords {
		for _, entry := range group.Entries {
			domain, ok := e.tax.DomainOf(entry.TaskID)
			if !ok {
				continue
			}
			if containsAny(lower, entry.Keywords) {
				found.Add(domain, entry.TaskID)
			}
		}
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
