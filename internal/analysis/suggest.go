package analysis

import (
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// DefaultSuggestionLimit caps the tasks suggested per domain.
const DefaultSuggestionLimit = 3

// Suggest proposes uncovered tasks for every domain whose share of covered
// tasks is below its target. Domains at or above target, or absent from
// targets, get no suggestion. With nothing covered every share is 0.
func Suggest(tax *taxonomy.Taxonomy, found schema.ExtractedTasks, targets map[taxonomy.DomainKey]float64, limit int) []schema.DomainSuggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	total := found.Total()
	out := []schema.DomainSuggestion{}

	for _, key := range taxonomy.DomainOrder {
		target, ok := targets[key]
		if !ok {
			continue
		}
		current := ratio(found.Count(key), total)
		if current >= target {
			continue
		}

		s := schema.DomainSuggestion{
			Domain:            key,
			CurrentPercentage: current,
			TargetPercentage:  target,
			Gap:               target - current,
			SuggestedTasks:    []taxonomy.Task{},
		}
		d, _ := tax.Domain(key)
		for _, task := range d.Tasks {
			if len(s.SuggestedTasks) == limit {
				break
			}
			if !found.Has(task.ID) {
				s.SuggestedTasks = append(s.SuggestedTasks, task)
			}
		}
		out = append(out, s)
	}
	return out
}
