// Package runtime probes the JavaScript runtime installed on the machine.
// NodeProber shells out to `node --version`, and the version helpers compare
// the result against a minimum using semantic versioning.
package runtime
