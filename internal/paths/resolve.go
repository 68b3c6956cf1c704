package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultAppDir is used when neither a flag nor the config names a directory.
const DefaultAppDir = "app"

// ErrDirNotFound is returned (wrapped in *NotFoundError) when the resolved
// directory is absent and creation was not requested.
var ErrDirNotFound = errors.New("directory not found")

// NotFoundError reports the absolute path that could not be found.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrDirNotFound }

// ResolutionOptions holds the inputs to ResolveRoot. Empty strings mean
// "not provided".
type ResolutionOptions struct {
	ExplicitPath    string // --app flag
	ConfiguredPath  string // pagesDir from the project config
	CreateIfMissing bool
	WorkDir         string
}

// NormalizeAppPath converts Windows separators to forward slashes and strips
// trailing separators. A bare "/" is kept as is.
func NormalizeAppPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// Choose applies the precedence explicit > configured > DefaultAppDir.
func Choose(opts ResolutionOptions) string {
	if strings.TrimSpace(opts.ExplicitPath) != "" {
		return opts.ExplicitPath
	}
	if strings.TrimSpace(opts.ConfiguredPath) != "" {
		return opts.ConfiguredPath
	}
	return DefaultAppDir
}

// Absolute joins the chosen, normalized value onto the working directory.
// It performs no I/O beyond resolving a relative WorkDir.
func Absolute(opts ResolutionOptions) (string, error) {
	chosen := filepath.FromSlash(NormalizeAppPath(Choose(opts)))
	if filepath.IsAbs(chosen) {
		return filepath.Clean(chosen), nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		workDir = wd
	}
	if !filepath.IsAbs(workDir) {
		abs, err := filepath.Abs(workDir)
		if err != nil {
			return "", fmt.Errorf("resolving working directory %s: %w", workDir, err)
		}
		workDir = abs
	}
	return filepath.Join(workDir, chosen), nil
}

// ResolveRoot computes the absolute app directory and verifies it exists,
// creating it (with parents) when CreateIfMissing is set.
func ResolveRoot(opts ResolutionOptions) (string, error) {
	root, err := Absolute(opts)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(root)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("%s exists but is not a directory", root)
		}
		return root, nil
	case errors.Is(err, os.ErrNotExist):
		if !opts.CreateIfMissing {
			return "", &NotFoundError{Path: root}
		}
		if err := os.MkdirAll(root, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", root, err)
		}
		return root, nil
	default:
		return "", fmt.Errorf("inspecting %s: %w", root, err)
	}
}
