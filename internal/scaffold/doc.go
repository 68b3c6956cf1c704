// Package scaffold plans and generates front-end components. Components are
// grouped under <root>/components/<group>/ (ui, layout, section, feature),
// rendered from embedded templates, and re-exported from one barrel file per
// group. Barrel updates are additive: existing exports are never rewritten.
package scaffold
