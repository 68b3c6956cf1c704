package doctor

import (
	"context"
	"fmt"
	goruntime "runtime"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/platform"
)

// ShellCheck warns when the invoking shell needs extra quoting for the
// colon-style commands and --flag=value arguments. It never fails.
type ShellCheck struct {
	// GOOS overrides the detected operating system; used in tests.
	GOOS string
}

func (c *ShellCheck) Name() string { return "shell" }

func (c *ShellCheck) Run(_ context.Context, ec ExecContext) (Result, error) {
	goos := c.GOOS
	if goos == "" {
		goos = goruntime.GOOS
	}

	shell := platform.DetectShell(ec.Env, goos)
	if shell.NeedsQuoting() {
		cli := branding.CLIName()
		return Warn(
			fmt.Sprintf("Quote arguments, e.g. %s 'add:component' Badge '--type=ui', or use `%s add component`", cli, cli),
			"%s may split or rewrite unquoted command arguments", shell,
		), nil
	}
	if shell == platform.ShellUnknown {
		return Pass("shell not detected; no quoting issues expected"), nil
	}
	return Pass("shell: %s", shell), nil
}
