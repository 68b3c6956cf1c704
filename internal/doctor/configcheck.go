package doctor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/config"
)

// ConfigCheck validates the project config file against its schema. A
// missing file passes because defaults apply.
type ConfigCheck struct{}

func (c *ConfigCheck) Name() string { return "config" }

func (c *ConfigCheck) Run(_ context.Context, ec ExecContext) (Result, error) {
	path, found := config.Find(ec.WorkDir)
	if !found {
		return Pass("no %s file, using defaults", branding.ConfigName()), nil
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		return Fail(
			fmt.Sprintf("Fix the syntax of %s or regenerate it with `%s init --force`", filepath.Base(path), branding.CLIName()),
			"%v", err,
		), nil
	}
	if !result.Valid {
		issues := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			issues[i] = issue.String()
		}
		return Fail(
			fmt.Sprintf("Run `%s config validate` and correct the reported keys", branding.CLIName()),
			"%s is invalid: %s", filepath.Base(path), strings.Join(issues, "; "),
		), nil
	}
	return Pass("%s is valid", filepath.Base(path)), nil
}
