package render

import (
	"fmt"
	"strings"

	"github.com/dshills/ecocritic/internal/batch"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// Renderer formats reports and task suggestions into bytes for output.
type Renderer interface {
	Render(report *batch.Report) ([]byte, error)
	RenderSuggestions(suggestions []schema.DomainSuggestion) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "json" (default), "md", "text". color only affects
// "text" and should be set when writing to a terminal.
func NewRenderer(format string, color bool) (Renderer, error) {
	switch format {
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "text":
		return newTextRenderer(color), nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, md, text", format)
	}
}

// domainRow is one line of the per-domain breakdown.
type domainRow struct {
	Domain  taxonomy.DomainKey
	Tasks   string
	Covered int
	Total   int
	Share   float64
}

func domainRows(res *schema.ValidationResult) []domainRow {
	rows := make([]domainRow, 0, len(taxonomy.DomainOrder))
	for _, key := range taxonomy.DomainOrder {
		dc := res.Coverage.Domains[key]
		tasks := strings.Join(res.Details.ExtractedTasks[key], ", ")
		if tasks == "" {
			tasks = "-"
		}
		rows = append(rows, domainRow{
			Domain:  key,
			Tasks:   tasks,
			Covered: dc.Covered,
			Total:   dc.Total,
			Share:   res.Distribution.Distributions[key],
		})
	}
	return rows
}

func pct(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

func verdict(valid bool) string {
	if valid {
		return "VALID"
	}
	return "INVALID"
}
