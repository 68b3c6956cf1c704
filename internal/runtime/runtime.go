package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrNodeNotFound is returned when the node binary is not on PATH.
var ErrNodeNotFound = errors.New("node executable not found")

// Prober reports the version of an installed runtime.
type Prober interface {
	Version(ctx context.Context) (string, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context) (string, error)

// Version calls f.
func (f ProberFunc) Version(ctx context.Context) (string, error) { return f(ctx) }

// ParseVersion strips a leading "v" and surrounding whitespace and parses the
// rest as a semantic version.
func ParseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return v, nil
}

// Satisfies reports whether version is at least minimum.
func Satisfies(version, minimum string) (bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return false, err
	}
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(strings.TrimSpace(minimum), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return c.Check(v), nil
}
