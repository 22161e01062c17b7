package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/ecocritic/internal/content"
	"github.com/dshills/ecocritic/internal/render"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

type suggestFlags struct {
	format string
	out    string
	sel    string
	target string
}

func newSuggestCmd(g *globalFlags) *cobra.Command {
	var flags suggestFlags
	cmd := &cobra.Command{
		Use:   "suggest <file>",
		Short: "Suggest uncovered tasks for domains below their target share",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runSuggest(a, args[0], flags, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "", "Output format: json, md, or text (default from config, else json)")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.sel, "select", "", "gjson path to the content object inside a JSON file")
	f.StringVar(&flags.target, "target", "", "Target shares, e.g. people=0.42,process=0.5,business=0.08")
	return cmd
}

func runSuggest(a *app, path string, flags suggestFlags, stdout io.Writer) error {
	format, err := resolveFormat(flags.format, a.cfg.Format)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	targets, err := parseTargets(flags.target)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	sel := flags.sel
	if sel == "" {
		sel = a.cfg.Select
	}

	doc, err := content.Load(path, content.Options{Select: sel})
	if err != nil {
		return codeError(3, "loading content: %s", err)
	}
	found := a.v.Extract(doc.Content)
	a.logger.Debug("extracted tasks", "path", path, "count", found.Total())

	suggestions := a.v.SuggestTasksForImprovement(found, targets)

	renderer, err := render.NewRenderer(format, useColor(stdout, flags.out))
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	data, err := renderer.RenderSuggestions(suggestions)
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}
	return writeOutput(stdout, flags.out, data)
}

// parseTargets parses "people=0.42,process=0.5" into per-domain targets.
// An empty string yields nil so the rule targets apply.
func parseTargets(s string) (map[taxonomy.DomainKey]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	out := make(map[taxonomy.DomainKey]float64)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("--target entry %q must be domain=share", pair)
		}
		key := taxonomy.DomainKey(strings.ToLower(strings.TrimSpace(k)))
		if !taxonomy.IsValidDomain(key) {
			return nil, fmt.Errorf("--target: unknown domain %q", k)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 0 || f > 1 {
			return nil, fmt.Errorf("--target: share for %s must be a number between 0 and 1, got %q", key, v)
		}
		out[key] = f
	}
	return out, nil
}
