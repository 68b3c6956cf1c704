// Package platform inspects the environment the CLI runs in: the invoking
// shell, whether output goes to a terminal, and the process environment as
// a map.
package platform
