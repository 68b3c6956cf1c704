package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
)

const componentsDir = "components"

// ComponentLocation is where a component and its group barrel live.
type ComponentLocation struct {
	GroupDir     string
	ComponentDir string
	BarrelPath   string
}

// PlanComponent derives the paths for a component. It performs no I/O and
// the barrel is a TypeScript index; use ForExt for JavaScript projects.
func PlanComponent(root string, group Group, name string, subdirs ...string) ComponentLocation {
	groupDir := filepath.Join(root, componentsDir, string(group))
	parts := append([]string{groupDir}, subdirs...)
	parts = append(parts, name)
	return ComponentLocation{
		GroupDir:     groupDir,
		ComponentDir: filepath.Join(parts...),
		BarrelPath:   filepath.Join(groupDir, barrelFileName("tsx")),
	}
}

// ForExt returns a copy of l whose barrel matches the component extension.
func (l ComponentLocation) ForExt(ext string) ComponentLocation {
	l.BarrelPath = filepath.Join(l.GroupDir, barrelFileName(ext))
	return l
}

// SplitSubpath turns "forms/inputs" (either separator) into path segments,
// rejecting empty, "." and ".." segments.
func SplitSubpath(s string) ([]string, error) {
	s = strings.Trim(strings.ReplaceAll(s, `\`, "/"), "/")
	if s == "" {
		return nil, nil
	}
	segments := strings.Split(s, "/")
	if err := validateSegments(segments); err != nil {
		return nil, fmt.Errorf("%w in %q", err, s)
	}
	return segments, nil
}

// validateSegments keeps subdirectories inside the group directory.
func validateSegments(segments []string) error {
	for _, seg := range segments {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsAny(seg, `/\`) || filepath.IsAbs(seg) {
			return fmt.Errorf("invalid path segment %q", seg)
		}
	}
	return nil
}

func barrelFileName(ext string) string {
	switch ext {
	case "jsx", "js":
		return "index.js"
	default:
		return "index.ts"
	}
}

// barrelExport is the line a component contributes to its group barrel.
func barrelExport(name string, subdirs []string) string {
	parts := append(append([]string{"."}, subdirs...), name, name)
	return fmt.Sprintf("export { default as %s } from '%s';", name, strings.Join(parts, "/"))
}
