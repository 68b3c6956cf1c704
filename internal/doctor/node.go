package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/frontkit-labs/frontkit/internal/runtime"
)

// DefaultNodeMinimum is the oldest Node.js release the generated projects
// support.
const DefaultNodeMinimum = "18.17.0"

// NodeVersionCheck compares the installed Node.js version with a minimum.
type NodeVersionCheck struct {
	Minimum string
	Probe   runtime.Prober
}

func (c *NodeVersionCheck) Name() string { return "node" }

func (c *NodeVersionCheck) Run(ctx context.Context, _ ExecContext) (Result, error) {
	minimum := c.Minimum
	if minimum == "" {
		minimum = DefaultNodeMinimum
	}
	probe := c.Probe
	if probe == nil {
		probe = &runtime.NodeProber{}
	}

	version, err := probe.Version(ctx)
	if errors.Is(err, runtime.ErrNodeNotFound) {
		return Fail(
			fmt.Sprintf("Install Node.js %s or newer from https://nodejs.org", minimum),
			"Node.js not found on PATH",
		), nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("probing node version: %w", err)
	}

	ok, err := runtime.Satisfies(version, minimum)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Fail(
			fmt.Sprintf("Upgrade Node.js to %s or newer (for example `nvm install --lts`)", minimum),
			"Node.js %s is older than the required %s", version, minimum,
		), nil
	}
	return Pass("Node.js %s (>= %s)", version, minimum), nil
}
