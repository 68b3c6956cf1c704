package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLoaderPackage is the TypeScript execution loader looked up by
// LoaderCheck.
const DefaultLoaderPackage = "tsx"

// LoaderCheck reports whether the TypeScript loader is installed where Node
// would resolve it from the project. A missing loader is a warning only.
type LoaderCheck struct {
	Package string
}

func (c *LoaderCheck) Name() string { return "loader" }

func (c *LoaderCheck) Run(_ context.Context, ec ExecContext) (Result, error) {
	pkg := c.Package
	if pkg == "" {
		pkg = DefaultLoaderPackage
	}

	manifest, err := findPackage(ec.WorkDir, pkg)
	if err != nil {
		return Result{}, err
	}
	if manifest == "" {
		return Warn(
			fmt.Sprintf("npm install -D %s", pkg),
			"%s not found in node_modules; TypeScript scripts will need another loader", pkg,
		), nil
	}

	version, err := readPackageVersion(manifest)
	if err != nil {
		return Result{}, err
	}
	if version == "" {
		return Pass("%s installed (%s)", pkg, filepath.Dir(manifest)), nil
	}
	return Pass("%s %s installed", pkg, version), nil
}

// findPackage walks from dir towards the filesystem root, the way Node
// resolves bare specifiers, and returns the package.json path of pkg.
func findPackage(dir, pkg string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(pkg), "package.json")
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("inspecting %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func readPackageVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return manifest.Version, nil
}
