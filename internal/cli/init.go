package cli

import (
	"fmt"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/config"
	"github.com/frontkit-labs/frontkit/internal/fileutil"
	"github.com/frontkit-labs/frontkit/internal/log"
	"github.com/frontkit-labs/frontkit/internal/paths"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the project config file",
		Long: `Create ` + branding.ConfigName() + `.<yaml|json|toml> in the working directory and
make sure the app directory it points at exists.

Without --yes the values are asked for interactively. An existing config file
is left untouched unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().BoolP("yes", "y", false, "Accept defaults without prompting")
	cmd.Flags().String("format", string(config.FormatYAML), "Config file format: yaml|json|toml")
	cmd.Flags().String("pages-dir", "", "App directory to record in the config")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	logger := log.FromContext(cmd.Context())

	wd, err := workDir(cmd)
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")
	yes, _ := cmd.Flags().GetBool("yes")
	formatFlag, _ := cmd.Flags().GetString("format")
	pagesDir, _ := cmd.Flags().GetString("pages-dir")

	format, err := config.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	defaults, _, err := config.Load(wd)
	if err != nil {
		logger.Verbosef("ignoring unreadable config: %v", err)
		d := config.Default()
		defaults = &d
	}
	if pagesDir != "" {
		defaults.PagesDir = paths.NormalizeAppPath(pagesDir)
	}

	cfg := *defaults
	if !yes {
		cfg, err = config.Prompt(cmd.InOrStdin(), cmd.OutOrStdout(), *defaults)
		if err != nil {
			return fmt.Errorf("reading answers: %w", err)
		}
		cfg.PagesDir = paths.NormalizeAppPath(cfg.PagesDir)
	}

	path, outcome, err := config.WriteTemplate(wd, cfg, format, force)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	switch outcome {
	case fileutil.OutcomeCreated:
		logger.OK("created %s", relPath(wd, path))
	case fileutil.OutcomeOverwritten:
		logger.OK("overwrote %s", relPath(wd, path))
	case fileutil.OutcomeSkipped:
		logger.Skip("%s already exists (use --force to overwrite)", relPath(wd, path))
		existing, _, err := config.Load(wd)
		if err != nil {
			return err
		}
		cfg = *existing
	}

	root, err := paths.ResolveRoot(paths.ResolutionOptions{
		ConfiguredPath:  cfg.PagesDir,
		CreateIfMissing: true,
		WorkDir:         wd,
	})
	if err != nil {
		return fmt.Errorf("preparing app directory: %w", err)
	}
	logger.OK("app directory %s", relPath(wd, root))

	logger.Printf("\nNext: %s add:component Button --type ui\n", branding.CLIName())
	return nil
}
