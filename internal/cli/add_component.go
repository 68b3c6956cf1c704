package cli

import (
	"errors"
	"fmt"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/config"
	"github.com/frontkit-labs/frontkit/internal/fileutil"
	"github.com/frontkit-labs/frontkit/internal/log"
	"github.com/frontkit-labs/frontkit/internal/paths"
	"github.com/frontkit-labs/frontkit/internal/scaffold"
	"github.com/spf13/cobra"
)

func newAddComponentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add:component <name>",
		Short: "Generate a component",
		Long: `Generate a component, its test and (for CSS modules) its stylesheet under
<app>/components/<type>/, and export it from the group's index file.

The app directory is --app, else pagesDir from the config file, else "app".
Existing files are skipped unless --force is given.`,
		Example: "  " + branding.CLIName() + " add:component nav-bar --type layout\n" +
			"  " + branding.CLIName() + " add:component LoginForm --type feature --path auth",
		Args: cobra.ExactArgs(1),
		RunE: runAddComponent,
	}
	addComponentFlags(cmd)
	return cmd
}

// newAddCmd provides "add component" for shells that mangle the colon form.
func newAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Generate project files",
	}
	componentCmd := &cobra.Command{
		Use:   "component <name>",
		Short: "Generate a component (same as add:component)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAddComponent,
	}
	addComponentFlags(componentCmd)
	addCmd.AddCommand(componentCmd)
	return addCmd
}

func addComponentFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", string(scaffold.GroupUI), "Component group: ui|layout|section|feature")
	cmd.Flags().String("app", "", "App directory (overrides pagesDir)")
	cmd.Flags().String("path", "", "Subdirectory inside the group, e.g. auth/forms")
	cmd.Flags().String("ext", "tsx", "File extension: tsx|jsx")
	cmd.Flags().Bool("force", false, "Overwrite existing component files")
}

func runAddComponent(cmd *cobra.Command, args []string) error {
	logger := log.FromContext(cmd.Context())

	wd, err := workDir(cmd)
	if err != nil {
		return err
	}
	typeFlag, _ := cmd.Flags().GetString("type")
	app, _ := cmd.Flags().GetString("app")
	subpath, _ := cmd.Flags().GetString("path")
	ext, _ := cmd.Flags().GetString("ext")
	force, _ := cmd.Flags().GetBool("force")

	group, err := scaffold.ParseGroup(typeFlag)
	if err != nil {
		return err
	}
	subdirs, err := scaffold.SplitSubpath(subpath)
	if err != nil {
		return err
	}

	cfg, cfgPath, err := config.Load(wd)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		logger.Verbosef("using config %s", cfgPath)
	} else {
		logger.Verbosef("no config file, using defaults")
	}

	root, err := paths.ResolveRoot(paths.ResolutionOptions{
		ExplicitPath:   app,
		ConfiguredPath: cfg.PagesDir,
		WorkDir:        wd,
	})
	if errors.Is(err, paths.ErrDirNotFound) {
		return fmt.Errorf("%w (run `%s init` or pass --app)", err, branding.CLIName())
	}
	if err != nil {
		return err
	}
	logger.Verbosef("app directory %s", root)

	result, err := scaffold.Generate(scaffold.Options{
		Root:    root,
		Group:   group,
		Name:    args[0],
		Subdirs: subdirs,
		Ext:     ext,
		Styling: scaffold.StylingFor(*cfg),
		Force:   force,
	})
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		rel := relPath(wd, f.Path)
		switch f.Outcome {
		case fileutil.OutcomeCreated:
			logger.OK("created %s", rel)
		case fileutil.OutcomeOverwritten:
			logger.OK("overwrote %s", rel)
		default:
			logger.Skip("%s exists (use --force to overwrite)", rel)
		}
	}
	barrel := relPath(wd, result.Location.BarrelPath)
	if result.BarrelUpdated {
		logger.OK("exported %s from %s", result.Name, barrel)
	} else {
		logger.Skip("%s already exports %s", barrel, result.Name)
	}
	return nil
}
