package render

import (
	"encoding/json"

	"github.com/dshills/ecocritic/internal/batch"
	"github.com/dshills/ecocritic/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(report *batch.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

func (r *jsonRenderer) RenderSuggestions(suggestions []schema.DomainSuggestion) ([]byte, error) {
	if suggestions == nil {
		suggestions = []schema.DomainSuggestion{}
	}
	return json.MarshalIndent(suggestions, "", "  ")
}
