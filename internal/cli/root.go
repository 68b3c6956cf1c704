package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/log"
	"github.com/frontkit-labs/frontkit/internal/platform"
	"github.com/spf13/cobra"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCmd builds the full command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds front-end components into a grouped
components/ tree, writes the project config file, and checks that the local
environment can run the generated code.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupOutput,
	}

	rootCmd.PersistentFlags().String("cwd", "", "Run as if started in this directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print extra detail")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newInitCmd(),
		newAddComponentCmd(),
		newAddCmd(),
		newDoctorCmd(),
		newConfigCmd(),
		newVersionCmd(info),
	)
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	rootCmd := NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date})
	err := rootCmd.Execute()
	if err != nil && !silent(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// setupOutput configures colors and attaches the logger to the command context.
func setupOutput(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorize := !noColor && os.Getenv("NO_COLOR") == ""
	if f, ok := out.(*os.File); ok {
		colorize = colorize && platform.IsTerminal(f)
	} else {
		colorize = false
	}
	log.SetColor(colorize)

	cmd.SetContext(log.WithLogger(cmd.Context(), log.New(out, verbose)))
	return nil
}

// workDir returns the absolute working directory, honoring --cwd.
func workDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("cwd")
	if err != nil {
		return "", err
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving --cwd %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("--cwd %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("--cwd %s: not a directory", dir)
	}
	return abs, nil
}

// relPath shortens p for display when it sits under base.
func relPath(base, p string) string {
	rel, err := filepath.Rel(base, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}
