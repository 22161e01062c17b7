package main

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/ecocritic/internal/compare"
)

type compareFlags struct {
	format string
	out    string
}

func newCompareCmd() *cobra.Command {
	var flags compareFlags
	cmd := &cobra.Command{
		Use:   "compare <before.json> <after.json>",
		Short: "Compare two saved validation results",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1], flags, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	return cmd
}

func runCompare(beforePath, afterPath string, flags compareFlags, stdout io.Writer) error {
	if err := checkListFormat(flags.format); err != nil {
		return err
	}
	before, err := compare.LoadResult(beforePath)
	if err != nil {
		return codeError(3, "%s", err)
	}
	after, err := compare.LoadResult(afterPath)
	if err != nil {
		return codeError(3, "%s", err)
	}
	d, err := compare.Compare(before, after)
	if err != nil {
		return codeError(3, "%s", err)
	}

	var data []byte
	if flags.format == "json" {
		data, err = json.MarshalIndent(d, "", "  ")
		if err != nil {
			return codeError(3, "encoding output: %s", err)
		}
	} else {
		var buf bytes.Buffer
		if err := compare.Format(&buf, d); err != nil {
			return codeError(3, "formatting comparison: %s", err)
		}
		data = buf.Bytes()
	}
	return writeOutput(stdout, flags.out, data)
}
