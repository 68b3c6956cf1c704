package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateValid(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"full yaml", FormatYAML, "useTailwind: true\nuseChakra: false\ndefaultLayout: main\npagesDir: src/app\n"},
		{"empty yaml", FormatYAML, ""},
		{"partial json", FormatJSON, `{"pagesDir": "app"}`},
		{"empty json", FormatJSON, "  "},
		{"toml", FormatTOML, "useChakra = true\ndefaultLayout = \"dashboard\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues: %v", result.Issues)
			}
		})
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name        string
		format      Format
		data        string
		wantPath    string
		wantKeyword string
	}{
		{"wrong type", FormatYAML, "useTailwind: \"sometimes\"\n", "/useTailwind", "type"},
		{"empty pagesDir", FormatJSON, `{"pagesDir": ""}`, "/pagesDir", "minLength"},
		{"unknown key", FormatTOML, "theme = \"dark\"\n", "", "additionalProperties"},
		{"not an object", FormatYAML, "- a\n- b\n", "", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath && issue.Keyword == tt.wantKeyword {
					found = true
					if issue.Message == "" {
						t.Error("issue message should not be empty")
					}
				}
			}
			if !found {
				t.Errorf("no issue at %q with keyword %q in %+v", tt.wantPath, tt.wantKeyword, result.Issues)
			}
		})
	}
}

func TestValidateDecodeError(t *testing.T) {
	if _, err := Validate([]byte("pagesDir: [unterminated"), FormatYAML); err == nil {
		t.Error("expected YAML decode error")
	}
	if _, err := Validate([]byte("pagesDir ="), FormatTOML); err == nil {
		t.Error("expected TOML decode error")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frontkit.config.json")
	writeFile(t, path, `{"useChakra": "yes"}`)

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if !strings.HasPrefix(result.Issues[0].String(), "/useChakra: ") {
		t.Errorf("issue = %q, want it prefixed with the instance path", result.Issues[0].String())
	}
}
