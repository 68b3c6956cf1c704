package platform

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal (including Cygwin
// and MSYS pseudo terminals).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Environ returns the process environment as a map. Later duplicates win.
func Environ() map[string]string {
	return EnvMap(os.Environ())
}

// EnvMap converts KEY=VALUE pairs into a map.
func EnvMap(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' && i > 0 {
				env[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return env
}
