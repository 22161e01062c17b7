package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/ecocritic/internal/batch"
	"github.com/dshills/ecocritic/internal/content"
	"github.com/dshills/ecocritic/internal/render"
)

// validateFlags holds the parsed flags for the validate command.
type validateFlags struct {
	format        string
	out           string
	sel           string
	concurrency   int
	failOnInvalid bool
}

func newValidateCmd(g *globalFlags) *cobra.Command {
	var flags validateFlags
	cmd := &cobra.Command{
		Use:   "validate <file-or-glob>...",
		Short: "Validate content files and report coverage, distribution, and score",
		Long: "Validate one or more content files (.json, .md, .txt). Arguments may be\n" +
			"doublestar globs such as 'content/**/*.json'.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runValidate(cmd.Context(), a, args, flags, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "", "Output format: json, md, or text (default from config, else json)")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.sel, "select", "", "gjson path to the content object inside each JSON file")
	f.IntVar(&flags.concurrency, "concurrency", 0, "Files validated in parallel (default from config)")
	f.BoolVar(&flags.failOnInvalid, "fail-on-invalid", false, "Exit 2 if any content is invalid")
	return cmd
}

func runValidate(ctx context.Context, a *app, args []string, flags validateFlags, stdout io.Writer) error {
	format, err := resolveFormat(flags.format, a.cfg.Format)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	if flags.concurrency < 0 {
		return codeError(3, "invalid flags: --concurrency must be > 0, got %d", flags.concurrency)
	}
	concurrency := flags.concurrency
	if concurrency == 0 {
		concurrency = a.cfg.Concurrency
	}
	sel := flags.sel
	if sel == "" {
		sel = a.cfg.Select
	}

	paths, err := batch.Expand(args)
	if err != nil {
		return codeError(3, "%s", err)
	}
	if len(paths) == 0 {
		return codeError(3, "no content files matched %v", args)
	}
	a.logger.Debug("validating content", "files", len(paths), "concurrency", concurrency)

	runner := batch.NewRunner(a.v,
		batch.WithConcurrency(concurrency),
		batch.WithLoadOptions(content.Options{Select: sel}),
		batch.WithLogger(a.logger),
	)
	report, err := runner.Run(ctx, paths)
	if err != nil {
		return codeError(3, "validation interrupted: %s", err)
	}
	report.Tool = "ecocritic"
	report.Version = version

	renderer, err := render.NewRenderer(format, useColor(stdout, flags.out))
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	data, err := renderer.Render(report)
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}
	if err := writeOutput(stdout, flags.out, data); err != nil {
		return err
	}

	s := report.Summary
	if s.LoadErrors > 0 {
		return codeError(3, "%d of %d content file(s) could not be loaded", s.LoadErrors, s.Total)
	}
	if flags.failOnInvalid && s.Invalid > 0 {
		return codeError(2, "%d of %d content file(s) are invalid", s.Invalid, s.Total)
	}
	return nil
}
