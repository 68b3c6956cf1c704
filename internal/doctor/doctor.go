package doctor

import (
	"fmt"
	"maps"
)

// Status is the verdict of a single check or of a whole run.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

func (s Status) severity() int {
	switch s {
	case StatusPass:
		return 0
	case StatusWarn:
		return 1
	default:
		return 2
	}
}

// Result is what a check reports. Fail results always carry a Fix once they
// have passed through the Runner.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// Pass builds a passing result.
func Pass(format string, args ...any) Result { return newResult(StatusPass, "", format, args...) }

// Warn builds a warning with a suggested fix.
func Warn(fix, format string, args ...any) Result {
	return newResult(StatusWarn, fix, format, args...)
}

// Fail builds a failure with a suggested fix.
func Fail(fix, format string, args ...any) Result {
	return newResult(StatusFail, fix, format, args...)
}

// ExecContext is the read-only input shared by every check in a run.
type ExecContext struct {
	WorkDir string
	Flags   map[string]string
	Env     map[string]string
}

// NewExecContext copies flags and env so checks cannot affect the caller.
func NewExecContext(workDir string, flags, env map[string]string) ExecContext {
	ec := ExecContext{
		WorkDir: workDir,
		Flags:   make(map[string]string, len(flags)),
		Env:     make(map[string]string, len(env)),
	}
	maps.Copy(ec.Flags, flags)
	maps.Copy(ec.Env, env)
	return ec
}

// Flag returns a flag value, or "" when unset.
func (ec ExecContext) Flag(name string) string {
	return ec.Flags[name]
}

// Aggregate returns fail if any status is fail, else warn if any is warn,
// else pass. An empty slice is pass.
func Aggregate(statuses []Status) Status {
	worst := StatusPass
	for _, s := range statuses {
		if s.severity() > worst.severity() {
			worst = s
		}
	}
	if worst.severity() == 2 {
		return StatusFail
	}
	return worst
}

// ExitCode maps an overall status to the process exit code.
func ExitCode(s Status) int {
	return s.severity()
}

func newResult(status Status, fix, format string, args ...any) Result {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return Result{Status: status, Message: msg, Fix: fix}
}
