package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/ecocritic/internal/config"
	"github.com/dshills/ecocritic/internal/profile"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the " + config.FileName + " file",
	}

	var (
		force       bool
		profileName string
	)
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with every default spelled out",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigInit(path, profileName, force, cmd.OutOrStdout())
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	initCmd.Flags().StringVar(&profileName, "profile", profile.Default, "Profile whose thresholds are written")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in rule profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigProfiles(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(initCmd, profilesCmd)
	return cmd
}

func runConfigProfiles(stdout io.Writer) error {
	for _, name := range profile.Names {
		p, err := profile.Get(name)
		if err != nil {
			return codeError(3, "%s", err)
		}
		fmt.Fprintln(stdout, p.Summary())
	}
	return nil
}

func runConfigInit(path, profileName string, force bool, stdout io.Writer) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return codeError(3, "%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return codeError(3, "checking %s: %s", path, err)
		}
	}
	data, err := config.DefaultYAML(profileName)
	if err != nil {
		return codeError(3, "encoding default config: %s", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return codeError(3, "writing config file: %s", err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return nil
}
