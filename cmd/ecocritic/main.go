package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/ecocritic/internal/config"
	"github.com/dshills/ecocritic/internal/profile"
	"github.com/dshills/ecocritic/internal/validator"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath   string
	taxonomyPath string
	profile      string
	verbose      bool
}

// app is the state every command needs: resolved config, logger, and a
// validator built from them.
type app struct {
	cfg     config.Config
	cfgFile string
	logger  *slog.Logger
	v       *validator.Validator
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:   "ecocritic",
		Short: "Check exam-prep content against the PMP exam content outline",
		Long: "EcoCritic maps course content to the tasks of the PMP Examination Content Outline,\n" +
			"measures coverage and domain balance, and suggests tasks to add.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default: ./"+config.FileName+" or $HOME/"+config.FileName+")")
	pf.StringVar(&g.taxonomyPath, "taxonomy", "", "Task outline file (JSON or YAML); overrides taxonomy_path in config")
	pf.StringVar(&g.profile, "profile", "", "Rule profile: course, module, lesson, or strict (default from config, else course)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Log processing steps to stderr")

	root.AddCommand(newValidateCmd(&g))
	root.AddCommand(newSuggestCmd(&g))
	root.AddCommand(newTasksCmd(&g))
	root.AddCommand(newCompareCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// setup loads configuration and builds the validator. Config problems exit 3.
func setup(g *globalFlags, stderr io.Writer) (*app, error) {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, used, err := config.Load(viper.New(), g.configPath)
	if err != nil {
		return nil, codeError(3, "%s", err)
	}
	if used != "" {
		logger.Debug("using config file", "path", used)
	}
	if g.taxonomyPath != "" {
		cfg.TaxonomyPath = g.taxonomyPath
	}

	if g.profile != "" {
		cfg.Profile = g.profile
	}

	p, err := profile.Get(cfg.Profile)
	if err != nil {
		return nil, codeError(3, "%s", err)
	}
	r, err := cfg.ApplyRules(p.Rules)
	if err != nil {
		return nil, codeError(3, "%s", err)
	}
	logger.Debug("rules selected", "profile", p.Name)

	v := validator.New(
		validator.WithLogger(logger),
		validator.WithTaxonomyPath(cfg.TaxonomyPath),
		validator.WithRules(r),
	)
	logger.Debug("taxonomy loaded", "source", v.Taxonomy().Source(), "version", v.Taxonomy().Version(), "tasks", v.Taxonomy().TaskCount())

	return &app{cfg: cfg, cfgFile: used, logger: logger, v: v}, nil
}

// resolveFormat picks the flag value over the configured one and checks it.
func resolveFormat(flag, configured string) (string, error) {
	f := flag
	if f == "" {
		f = configured
	}
	switch f {
	case "json", "md", "text":
		return f, nil
	default:
		return "", fmt.Errorf("--format must be json, md, or text, got %q", f)
	}
}

// useColor reports whether styled output should be emitted to w.
func useColor(w io.Writer, outPath string) bool {
	if outPath != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeOutput writes data to outPath, or to stdout with a trailing newline.
func writeOutput(stdout io.Writer, outPath string, data []byte) error {
	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return codeError(3, "writing output file: %s", err)
		}
		return nil
	}
	if _, err := stdout.Write(data); err != nil {
		return codeError(3, "writing output: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(stdout)
	}
	return nil
}
