package doctor

import (
	"context"

	"github.com/frontkit-labs/frontkit/internal/runtime"
)

// Check is one diagnostic probe. Run returns an error only for unexpected
// failures; expected problems are reported as warn or fail results.
type Check interface {
	Name() string
	Run(ctx context.Context, ec ExecContext) (Result, error)
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc struct {
	CheckName string
	Fn        func(ctx context.Context, ec ExecContext) (Result, error)
}

// Name returns the check name.
func (c CheckFunc) Name() string { return c.CheckName }

// Run calls Fn.
func (c CheckFunc) Run(ctx context.Context, ec ExecContext) (Result, error) { return c.Fn(ctx, ec) }

// Registry is an ordered list of checks. Report order is registration order.
type Registry struct {
	checks []Check
}

// Register appends checks to the registry.
func (r *Registry) Register(checks ...Check) {
	r.checks = append(r.checks, checks...)
}

// Checks returns the registered checks in order.
func (r *Registry) Checks() []Check {
	out := make([]Check, len(r.checks))
	copy(out, r.checks)
	return out
}

// Options tunes the default checks. Zero values select the defaults.
type Options struct {
	NodeMinimum   string
	NodeProber    runtime.Prober
	LoaderPackage string
}

// DefaultRegistry returns the built-in checks: node version, loader,
// app directory, shell quoting and config file.
func DefaultRegistry(opts Options) *Registry {
	r := &Registry{}
	r.Register(
		&NodeVersionCheck{Minimum: opts.NodeMinimum, Probe: opts.NodeProber},
		&LoaderCheck{Package: opts.LoaderPackage},
		&AppDirCheck{},
		&ShellCheck{},
		&ConfigCheck{},
	)
	return r
}
