package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/log"
	"golang.org/x/sync/errgroup"
)

// Entry pairs a check name with its result.
type Entry struct {
	Name string `json:"name"`
	Result
}

// Report is the outcome of a run.
type Report struct {
	Status  Status  `json:"status"`
	Entries []Entry `json:"checks"`
}

// Count returns how many entries have the given status.
func (r Report) Count(s Status) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == s {
			n++
		}
	}
	return n
}

// Runner executes the checks of a registry.
type Runner struct {
	Registry *Registry

	// Concurrent runs checks in parallel. Entries keep registration order.
	Concurrent bool
}

// Run executes every registered check and aggregates the results. It never
// returns an error and never panics because of a check.
func (r *Runner) Run(ctx context.Context, ec ExecContext) Report {
	var checks []Check
	if r.Registry != nil {
		checks = r.Registry.Checks()
	}
	entries := make([]Entry, len(checks))

	if r.Concurrent {
		var g errgroup.Group
		for i, c := range checks {
			g.Go(func() error {
				entries[i] = runCheck(ctx, i, c, ec)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, c := range checks {
			entries[i] = runCheck(ctx, i, c, ec)
		}
	}

	statuses := make([]Status, len(entries))
	for i, e := range entries {
		statuses[i] = e.Status
	}
	return Report{Status: Aggregate(statuses), Entries: entries}
}

func runCheck(ctx context.Context, i int, c Check, ec ExecContext) (entry Entry) {
	logger := log.FromContext(ctx)
	name := fmt.Sprintf("check-%d", i)

	defer func() {
		if p := recover(); p != nil {
			entry.Result = Result{Status: StatusFail, Message: fmt.Sprintf("check panicked: %v", p)}
		}
		entry.Name = name
		entry.Result = normalize(name, entry.Result)
	}()

	if c == nil {
		return Entry{Result: Result{Status: StatusFail, Message: "nil check registered"}}
	}
	if n := c.Name(); n != "" {
		name = n
	}
	logger.Verbosef("running check %s", name)

	res, err := c.Run(ctx, ec)
	if err != nil {
		logger.Verbosef("check %s returned error: %v", name, err)
		return Entry{Result: Result{Status: StatusFail, Message: err.Error()}}
	}
	return Entry{Result: res}
}

// normalize enforces the result invariants: a known status, a message, and a
// fix on every failure.
func normalize(name string, res Result) Result {
	switch res.Status {
	case StatusPass, StatusWarn, StatusFail:
	default:
		res = Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("check returned unknown status %q: %s", res.Status, res.Message),
			Fix:     res.Fix,
		}
	}
	if strings.TrimSpace(res.Message) == "" {
		res.Message = fmt.Sprintf("%s: %s", name, res.Status)
	}
	if res.Status == StatusFail && strings.TrimSpace(res.Fix) == "" {
		res.Fix = fmt.Sprintf("Run `%s doctor --verbose` for details and resolve the %s check", branding.CLIName(), name)
	}
	return res
}
