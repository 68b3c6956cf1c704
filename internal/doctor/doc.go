// Package doctor runs independent, read-only health checks against a project
// and its environment.
//
// Checks are registered in a Registry and executed by a Runner against a
// shared ExecContext. Every check yields a Result with a pass, warn, or fail
// status; errors and panics inside a check are converted to fail results so a
// broken check never stops the others. The overall status is the worst status
// reported, and ExitCode maps it to the process exit code.
package doctor
