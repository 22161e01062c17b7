package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/ecocritic/internal/batch"
	"github.com/dshills/ecocritic/internal/schema"
)

type markdownRenderer struct{}

var funcs = template.FuncMap{
	"pct":     pct,
	"verdict": verdict,
	"rows":    domainRows,
}

var mdTemplate = template.Must(template.New("report").Funcs(funcs).Parse(`# EcoCritic Report

**Run:** {{ .Summary.RunID }}
**Files:** {{ .Summary.Total }} | **Valid:** {{ .Summary.Valid }} | **Invalid:** {{ .Summary.Invalid }} | **Load errors:** {{ .Summary.LoadErrors }}
**Mean score:** {{ pct .Summary.MeanScore }}
{{ range .Items }}
---

## {{ .Path }}
{{ if .Error }}
**Error:** {{ .Error }}
{{ else }}{{ with .Result }}
**Content:** {{ .ContentID }}{{ if .ContentType }} ({{ .ContentType }}){{ end }}
**Verdict:** {{ verdict .IsValid }} · **Score:** {{ pct .Score }}
**Coverage:** {{ .Coverage.TotalTasksCovered }}/{{ .Coverage.TotalTasks }} tasks ({{ pct .Coverage.CoveragePercentage }})

| Domain | Tasks | Covered | Share |
|---|---|---|---|
{{ range rows . }}| {{ .Domain }} | {{ .Tasks }} | {{ .Covered }}/{{ .Total }} | {{ pct .Share }} |
{{ end }}{{ if .Issues }}
### Issues
{{ range .Issues }}
- {{ . }}{{ end }}
{{ end }}{{ if .Recommendations }}
### Recommendations
{{ range .Recommendations }}
- {{ . }}{{ end }}
{{ end }}{{ end }}{{ end }}{{ end }}`))

var mdSuggestTemplate = template.Must(template.New("suggest").Funcs(funcs).Parse(`# Suggested Tasks
{{ if not . }}
Every domain is at or above its target share.
{{ end }}{{ range . }}
## {{ .Domain }}

Current {{ pct .CurrentPercentage }} · Target {{ pct .TargetPercentage }} · Gap {{ pct .Gap }}
{{ range .SuggestedTasks }}
- **{{ .ID }}** {{ .Title }}{{ end }}
{{ end }}`))

func (r *markdownRenderer) Render(report *batch.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *markdownRenderer) RenderSuggestions(suggestions []schema.DomainSuggestion) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdSuggestTemplate.Execute(&buf, suggestions); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
