package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/frontkit-labs/frontkit/internal/config"
	"github.com/frontkit-labs/frontkit/internal/fileutil"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Styling selects the component template variant.
type Styling string

const (
	StylingCSSModules Styling = "css-modules"
	StylingTailwind   Styling = "tailwind"
	StylingChakra     Styling = "chakra"
)

// StylingFor picks the styling from the project config. Chakra wins when
// both Chakra and Tailwind are enabled.
func StylingFor(cfg config.Config) Styling {
	switch {
	case cfg.UseChakra:
		return StylingChakra
	case cfg.UseTailwind:
		return StylingTailwind
	default:
		return StylingCSSModules
	}
}

// Options controls Generate.
type Options struct {
	Root    string // resolved app directory
	Group   Group
	Name    string   // raw name; converted with ComponentName
	Subdirs []string // optional nesting inside the group directory
	Ext     string   // "tsx" (default) or "jsx"
	Styling Styling
	Force   bool // overwrite existing component files
}

// FileResult records what happened to one generated file.
type FileResult struct {
	Path    string
	Outcome fileutil.Outcome
}

// Result holds the outcome of a component generation.
type Result struct {
	Name          string
	Location      ComponentLocation
	Files         []FileResult
	BarrelUpdated bool
}

type plannedFile struct {
	template string
	fileName string
}

// templateData holds all variables available to component templates.
type templateData struct {
	Name       string
	Group      Group
	Styling    Styling
	TypeScript bool
	Imports    []string
}

// Generate writes a component, its test stub, and (for CSS modules) its
// stylesheet, then adds the component to the group barrel.
func Generate(opts Options) (*Result, error) {
	name, err := ComponentName(opts.Name)
	if err != nil {
		return nil, err
	}
	if _, err := ParseGroup(string(opts.Group)); err != nil {
		return nil, err
	}
	if err := validateSegments(opts.Subdirs); err != nil {
		return nil, err
	}

	ext := opts.Ext
	if ext == "" {
		ext = "tsx"
	}
	if ext != "tsx" && ext != "jsx" {
		return nil, fmt.Errorf("invalid extension %q: must be tsx or jsx", ext)
	}
	styling := opts.Styling
	if styling == "" {
		styling = StylingCSSModules
	}

	loc := PlanComponent(opts.Root, opts.Group, name, opts.Subdirs...).ForExt(ext)
	data := newTemplateData(name, opts.Group, styling, ext == "tsx")

	files := []plannedFile{
		{"component.tmpl", name + "." + ext},
		{"test.tmpl", name + ".test." + ext},
	}
	if styling == StylingCSSModules {
		files = append(files, plannedFile{"styles.tmpl", name + ".module.css"})
	}

	result := &Result{Name: name, Location: loc}
	for _, f := range files {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, f.template, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", f.template, err)
		}

		outPath := filepath.Join(loc.ComponentDir, f.fileName)
		outcome, err := fileutil.WriteWithForcePolicy(outPath, buf.Bytes(), opts.Force)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, FileResult{Path: outPath, Outcome: outcome})
	}

	updated, err := fileutil.AppendLineIfMissing(loc.BarrelPath, barrelExport(name, opts.Subdirs))
	if err != nil {
		return nil, fmt.Errorf("updating barrel %s: %w", loc.BarrelPath, err)
	}
	result.BarrelUpdated = updated

	return result, nil
}

func newTemplateData(name string, group Group, styling Styling, typeScript bool) templateData {
	d := templateData{Name: name, Group: group, Styling: styling, TypeScript: typeScript}
	switch styling {
	case StylingChakra:
		d.Imports = append(d.Imports, "import { Box } from '@chakra-ui/react';")
	case StylingCSSModules:
		d.Imports = append(d.Imports, fmt.Sprintf("import styles from './%s.module.css';", name))
	}
	if typeScript {
		d.Imports = append(d.Imports, "import type { ReactNode } from 'react';")
	}
	return d
}
