package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frontkit-labs/frontkit/internal/fileutil"
	"github.com/google/go-cmp/cmp"
)

func TestRenderLoadsBack(t *testing.T) {
	cfg := Config{UseTailwind: true, UseChakra: false, DefaultLayout: "marketing", PagesDir: "src/app"}

	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Render(cfg, format)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}

			result, err := Validate(data, format)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if !result.Valid {
				t.Fatalf("rendered config is invalid: %v\n%s", result.Issues, data)
			}

			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, FileName(format)), string(data))
			loaded, _, err := Load(dir)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if diff := cmp.Diff(cfg, *loaded); diff != "" {
				t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderYAMLHeader(t *testing.T) {
	data, err := Render(Default(), FormatYAML)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Frontkit project configuration\n") {
		t.Errorf("YAML output missing header:\n%s", data)
	}
	if !bytes.Contains(data, []byte("pagesDir: app")) {
		t.Errorf("YAML output missing pagesDir:\n%s", data)
	}
}

func TestWriteTemplate(t *testing.T) {
	dir := t.TempDir()

	path, outcome, err := WriteTemplate(dir, Default(), FormatYAML, false)
	if err != nil {
		t.Fatalf("WriteTemplate() error: %v", err)
	}
	if outcome != fileutil.OutcomeCreated {
		t.Errorf("outcome = %q, want created", outcome)
	}
	if path != filepath.Join(dir, "frontkit.config.yaml") {
		t.Errorf("path = %q", path)
	}

	// A second init without force leaves the file alone, even for another format.
	custom := Default()
	custom.PagesDir = "web"
	path2, outcome, err := WriteTemplate(dir, custom, FormatJSON, false)
	if err != nil {
		t.Fatalf("WriteTemplate() error: %v", err)
	}
	if outcome != fileutil.OutcomeSkipped || path2 != path {
		t.Errorf("second write = (%q, %q), want skip of %q", path2, outcome, path)
	}

	// Force overwrites.
	_, outcome, err = WriteTemplate(dir, custom, FormatYAML, true)
	if err != nil {
		t.Fatalf("WriteTemplate(force) error: %v", err)
	}
	if outcome != fileutil.OutcomeOverwritten {
		t.Errorf("outcome = %q, want overwritten", outcome)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "pagesDir: web") {
		t.Errorf("forced write did not update content:\n%s", data)
	}
}

func TestWriteTemplateForceReplacesOtherFormats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frontkit.config.yaml"), "pagesDir: old\n")
	writeFile(t, filepath.Join(dir, "frontkit.config.yml"), "pagesDir: older\n")

	cfg := Default()
	cfg.PagesDir = "newdir"
	path, outcome, err := WriteTemplate(dir, cfg, FormatJSON, true)
	if err != nil {
		t.Fatalf("WriteTemplate(force) error: %v", err)
	}
	if outcome != fileutil.OutcomeOverwritten {
		t.Errorf("outcome = %q, want overwritten", outcome)
	}
	if path != filepath.Join(dir, "frontkit.config.json") {
		t.Errorf("path = %q", path)
	}
	for _, stale := range []string{"frontkit.config.yaml", "frontkit.config.yml"} {
		if _, err := os.Stat(filepath.Join(dir, stale)); !os.IsNotExist(err) {
			t.Errorf("%s should have been removed", stale)
		}
	}

	found, ok := Find(dir)
	if !ok || found != path {
		t.Errorf("Find() = %q, %v, want %q", found, ok, path)
	}
	loaded, _, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.PagesDir != "newdir" {
		t.Errorf("PagesDir = %q, want newdir", loaded.PagesDir)
	}
}
