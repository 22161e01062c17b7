package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/ecocritic/internal/taxonomy"
)

type tasksFlags struct {
	domain string
	format string
}

func newTasksCmd(g *globalFlags) *cobra.Command {
	var flags tasksFlags
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of the content outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runTasks(a, flags, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&flags.domain, "domain", "", "Only list tasks of this domain: people, process, or business")
	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text or json")

	show := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task with its domain and enablers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runTaskShow(a, args[0], flags.format, cmd.OutOrStdout())
		},
	}
	show.Flags().StringVar(&flags.format, "format", "text", "Output format: text or json")
	cmd.AddCommand(show)
	return cmd
}

func runTasks(a *app, flags tasksFlags, stdout io.Writer) error {
	if err := checkListFormat(flags.format); err != nil {
		return err
	}
	all := a.v.GetAllTasks()
	if flags.domain != "" {
		key := taxonomy.DomainKey(strings.ToLower(flags.domain))
		if !taxonomy.IsValidDomain(key) {
			return codeError(3, "invalid flags: --domain must be people, process, or business, got %q", flags.domain)
		}
		kept := all[:0]
		for _, t := range all {
			if t.Domain == key {
				kept = append(kept, t)
			}
		}
		all = kept
	}

	if flags.format == "json" {
		return writeJSON(stdout, all)
	}
	tax := a.v.Taxonomy()
	var b strings.Builder
	var last taxonomy.DomainKey
	for _, t := range all {
		if t.Domain != last {
			if last != "" {
				b.WriteString("\n")
			}
			d, _ := tax.Domain(t.Domain)
			fmt.Fprintf(&b, "%s (%d tasks, target %.0f%%)\n", d.Name, len(d.Tasks), d.TargetPercentage*100)
			last = t.Domain
		}
		fmt.Fprintf(&b, "  %-4s %s\n", t.ID, t.Title)
	}
	return writeOutput(stdout, "", []byte(b.String()))
}

func runTaskShow(a *app, id, format string, stdout io.Writer) error {
	if err := checkListFormat(format); err != nil {
		return err
	}
	t := a.v.GetTaskDetails(strings.ToUpper(id))
	if t == nil {
		return codeError(3, "unknown task %q", id)
	}
	if format == "json" {
		return writeJSON(stdout, t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", t.ID, t.Title)
	fmt.Fprintf(&b, "domain: %s\n", a.v.Taxonomy().DomainName(t.Domain))
	if t.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", t.Description)
	}
	if len(t.Enablers) > 0 {
		b.WriteString("\nenablers:\n")
		for _, e := range t.Enablers {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	return writeOutput(stdout, "", []byte(b.String()))
}

func checkListFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return codeError(3, "invalid flags: --format must be text or json, got %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return codeError(3, "encoding output: %s", err)
	}
	return writeOutput(w, "", data)
}
