package scaffold

import (
	"fmt"
	"strings"
)

// Group namespaces components under a shared directory and barrel file.
type Group string

const (
	GroupUI      Group = "ui"
	GroupLayout  Group = "layout"
	GroupSection Group = "section"
	GroupFeature Group = "feature"
)

// Groups lists every valid group in display order.
var Groups = []Group{GroupUI, GroupLayout, GroupSection, GroupFeature}

// ParseGroup validates s (case-insensitive) as a Group.
func ParseGroup(s string) (Group, error) {
	g := Group(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Groups {
		if g == valid {
			return g, nil
		}
	}
	return "", fmt.Errorf("invalid component type %q: must be one of ui, layout, section, feature", s)
}
