package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/config"
	"github.com/frontkit-labs/frontkit/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the project config",
		Long: `Read and validate ` + branding.ConfigName() + `.<yaml|json|toml>.

Values can be overridden with ` + branding.EnvPrefix() + `_<KEY> environment variables,
e.g. ` + branding.EnvVar("pagesDir") + `=src/app.`,
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a key",
		Long:  "Print the effective value of a key. Keys: " + strings.Join(config.Keys, ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := workDir(cmd)
			if err != nil {
				return err
			}
			value, err := config.Get(wd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path of the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := workDir(cmd)
			if err != nil {
				return err
			}
			path, found := config.Find(wd)
			if !found {
				return fmt.Errorf("no %s file in %s", branding.ConfigName(), wd)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate the config file against its schema",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigValidate,
	}

	configCmd.AddCommand(getCmd, pathCmd, validateCmd)
	return configCmd
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	logger := log.FromContext(cmd.Context())

	wd, err := workDir(cmd)
	if err != nil {
		return err
	}

	var path string
	if len(args) == 1 {
		path = args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}
	} else {
		found := false
		if path, found = config.Find(wd); !found {
			return fmt.Errorf("no %s file in %s", branding.ConfigName(), wd)
		}
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		logger.OK("%s is valid", relPath(wd, path))
		return nil
	}

	logger.Fail("%s is invalid", relPath(wd, path))
	for _, issue := range result.Issues {
		logger.Printf("         %s\n", issue)
	}
	return &ExitError{Code: 2}
}
