package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/ecocritic/internal/batch"
	"github.com/dshills/ecocritic/internal/schema"
)

type textStyles struct {
	Title   lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Subtle  lipgloss.Style
	Heading lipgloss.Style
}

type textRenderer struct {
	s textStyles
}

func newTextRenderer(color bool) *textRenderer {
	var out io.Writer = io.Discard
	if color {
		out = os.Stdout
	}
	lr := lipgloss.NewRenderer(out)
	return &textRenderer{s: textStyles{
		Title:   lr.NewStyle().Bold(true),
		Pass:    lr.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Fail:    lr.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Subtle:  lr.NewStyle().Foreground(lipgloss.Color("241")),
		Heading: lr.NewStyle().Foreground(lipgloss.Color("170")),
	}}
}

func (r *textRenderer) verdict(valid bool) string {
	if valid {
		return r.s.Pass.Render(verdict(true))
	}
	return r.s.Fail.Render(verdict(false))
}

func (r *textRenderer) Render(report *batch.Report) ([]byte, error) {
	var b bytes.Buffer
	s := report.Summary
	fmt.Fprintf(&b, "%s %s\n", r.s.Title.Render("ecocritic"), r.s.Subtle.Render(s.RunID))
	fmt.Fprintf(&b, "files %d  valid %d  invalid %d  errors %d  mean score %s\n",
		s.Total, s.Valid, s.Invalid, s.LoadErrors, pct(s.MeanScore))

	for _, item := range report.Items {
		b.WriteString("\n")
		if item.Error != "" {
			fmt.Fprintf(&b, "%s %s\n  %s\n", r.s.Fail.Render("ERROR"), item.Path, item.Error)
			continue
		}
		res := item.Result
		fmt.Fprintf(&b, "%s %s  score %s  coverage %d/%d (%s)\n",
			r.verdict(res.IsValid), item.Path, pct(res.Score),
			res.Coverage.TotalTasksCovered, res.Coverage.TotalTasks, pct(res.Coverage.CoveragePercentage))
		for _, row := range domainRows(res) {
			fmt.Fprintf(&b, "  %-9s %2d/%-2d  share %6s  %s\n",
				row.Domain, row.Covered, row.Total, pct(row.Share), r.s.Subtle.Render(row.Tasks))
		}
		writeList(&b, r.s.Heading.Render("issues"), res.Issues)
		writeList(&b, r.s.Heading.Render("recommendations"), res.Recommendations)
	}
	return b.Bytes(), nil
}

func (r *textRenderer) RenderSuggestions(suggestions []schema.DomainSuggestion) ([]byte, error) {
	var b bytes.Buffer
	if len(suggestions) == 0 {
		b.WriteString("Every domain is at or above its target share.\n")
		return b.Bytes(), nil
	}
	for i, sg := range suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  current %s  target %s  gap %s\n",
			r.s.Heading.Render(string(sg.Domain)), pct(sg.CurrentPercentage), pct(sg.TargetPercentage), pct(sg.Gap))
		for _, task := range sg.SuggestedTasks {
			fmt.Fprintf(&b, "  %-4s %s\n", task.ID, task.Title)
		}
	}
	return b.Bytes(), nil
}

func writeList(b *bytes.Buffer, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", heading)
	for _, l := range lines {
		fmt.Fprintf(b, "    - %s\n", l)
	}
}
