package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/frontkit-labs/frontkit/internal/branding"
	"github.com/frontkit-labs/frontkit/internal/paths"
)

// DefaultAppDirCandidates are the source directories AppDirCheck looks for.
var DefaultAppDirCandidates = []string{"app", "src/app", "pages", "src/pages"}

// AppDirCheck makes sure exactly one application source directory can be
// found. An explicit "app" flag, then a "pagesDir" flag from the project
// config, take precedence over discovery.
type AppDirCheck struct {
	Candidates []string // doublestar patterns relative to the working directory
}

func (c *AppDirCheck) Name() string { return "app-dir" }

func (c *AppDirCheck) Run(_ context.Context, ec ExecContext) (Result, error) {
	if explicit := firstNonEmpty(ec.Flag("app"), ec.Flag("pagesDir")); explicit != "" {
		return c.checkExplicit(ec.WorkDir, explicit)
	}

	candidates := c.Candidates
	if len(candidates) == 0 {
		candidates = DefaultAppDirCandidates
	}

	workDir := ec.WorkDir
	if workDir == "" {
		workDir = "."
	}
	found, err := matchDirs(os.DirFS(workDir), candidates)
	if err != nil {
		return Result{}, err
	}

	switch len(found) {
	case 0:
		return Fail(
			fmt.Sprintf("Create one with `%s init`, or pass --app <dir>", branding.CLIName()),
			"no app directory found (looked for %s)", strings.Join(candidates, ", "),
		), nil
	case 1:
		return Pass("app directory: %s", found[0]), nil
	default:
		return Warn(
			fmt.Sprintf("Pass --app <dir> or set pagesDir in %s.yaml", branding.ConfigName()),
			"multiple app directories found: %s", strings.Join(found, ", "),
		), nil
	}
}

func (c *AppDirCheck) checkExplicit(workDir, dir string) (Result, error) {
	root, err := paths.ResolveRoot(paths.ResolutionOptions{ExplicitPath: dir, WorkDir: workDir})
	if errors.Is(err, paths.ErrDirNotFound) {
		return Fail(
			fmt.Sprintf("Create %s or point --app at an existing directory", dir),
			"app directory %s does not exist", dir,
		), nil
	}
	if err != nil {
		return Fail("Point --app at a directory", "app directory %s: %v", dir, err), nil
	}
	return Pass("app directory: %s", root), nil
}

// matchDirs returns the sorted, de-duplicated directories matching any of the
// patterns.
func matchDirs(fsys fs.FS, patterns []string) ([]string, error) {
	var found []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := fs.Stat(fsys, m)
			if err != nil || !info.IsDir() {
				continue
			}
			found = append(found, m)
		}
	}
	slices.Sort(found)
	return slices.Compact(found), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
