// Package paths resolves the project's source ("app") directory. The directory
// is chosen from an explicit --app flag, the pagesDir config value, or the
// literal default "app", in that order, and is always returned absolute.
package paths
