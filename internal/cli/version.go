package cli

import (
	"encoding/json"
	"fmt"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			short, _ := cmd.Flags().GetBool("short")
			asJSON, _ := cmd.Flags().GetBool("json")

			if short {
				fmt.Fprintln(out, info.Version)
				return nil
			}

			if asJSON {
				data := map[string]string{
					"version": info.Version,
					"commit":  info.Commit,
					"date":    info.Date,
				}
				raw, err := json.MarshalIndent(data, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(raw))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
			return nil
		},
	}
	cmd.Flags().Bool("short", false, "Print version number only")
	cmd.Flags().Bool("json", false, "Print version info as JSON")
	return cmd
}
