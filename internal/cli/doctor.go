package cli

import (
	"github.com/frontkit-labs/frontkit/internal/config"
	"github.com/frontkit-labs/frontkit/internal/doctor"
	"github.com/frontkit-labs/frontkit/internal/log"
	"github.com/frontkit-labs/frontkit/internal/platform"
	"github.com/spf13/cobra"
)

// newDoctorRegistry is swapped in tests.
var newDoctorRegistry = func() *doctor.Registry {
	return doctor.DefaultRegistry(doctor.Options{})
}

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the project and environment",
		Long: `Run diagnostic checks: Node.js version, TypeScript loader, app directory,
shell quoting and config file.

Exit status is 0 when every check passes, 1 when there are only warnings and
2 when any check fails.`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().Bool("parallel", false, "Run checks concurrently")
	cmd.Flags().String("app", "", "App directory to check instead of discovering one")
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	logger := log.FromContext(cmd.Context())

	wd, err := workDir(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	parallel, _ := cmd.Flags().GetBool("parallel")
	app, _ := cmd.Flags().GetString("app")

	flags := map[string]string{}
	if app != "" {
		flags["app"] = app
	}
	// A broken config is reported by the config check, not here.
	if cfg, cfgPath, err := config.Load(wd); err == nil && cfgPath != "" {
		flags["pagesDir"] = cfg.PagesDir
	}

	ec := doctor.NewExecContext(wd, flags, platform.Environ())
	runner := &doctor.Runner{Registry: newDoctorRegistry(), Concurrent: parallel}
	report := runner.Run(cmd.Context(), ec)

	if asJSON {
		if err := doctor.WriteJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		doctor.PrintText(logger, report)
	}

	if code := doctor.ExitCode(report.Status); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
