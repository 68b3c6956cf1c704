// Package fileutil holds the idempotent file writers used by init and the
// component generator. Writes are check-then-write and assume a single
// process; they are not atomic.
package fileutil
