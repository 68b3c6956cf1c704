package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frontkit-labs/frontkit/internal/runtime"
)

func TestNodeVersionCheck(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		err        error
		wantStatus Status
		wantErr    bool
	}{
		{"current", "20.11.1", nil, StatusPass, false},
		{"exact minimum", "18.17.0", nil, StatusPass, false},
		{"too old", "16.20.2", nil, StatusFail, false},
		{"missing", "", fmt.Errorf("%w: not in PATH", runtime.ErrNodeNotFound), StatusFail, false},
		{"probe broken", "", errors.New("exit status 1"), "", true},
		{"garbage version", "banana", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &NodeVersionCheck{Probe: runtime.ProberFunc(func(context.Context) (string, error) {
				return tt.version, tt.err
			})}
			res, err := check.Run(context.Background(), ExecContext{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if res.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q (%s)", res.Status, tt.wantStatus, res.Message)
			}
			if res.Status == StatusFail && res.Fix == "" {
				t.Error("fail result without fix")
			}
		})
	}
}

func TestNodeVersionCheckCustomMinimum(t *testing.T) {
	check := &NodeVersionCheck{
		Minimum: "22.0.0",
		Probe:   runtime.ProberFunc(func(context.Context) (string, error) { return "20.11.1", nil }),
	}
	res, err := check.Run(context.Background(), ExecContext{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusFail || !strings.Contains(res.Fix, "22.0.0") {
		t.Errorf("result = %+v", res)
	}
}

func TestLoaderCheck(t *testing.T) {
	t.Run("missing is a warning", func(t *testing.T) {
		dir := t.TempDir()
		res, err := (&LoaderCheck{Package: "frontkit-test-loader-absent"}).Run(context.Background(), ExecContext{WorkDir: dir})
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != StatusWarn {
			t.Errorf("Status = %q, want warn", res.Status)
		}
		if !strings.Contains(res.Fix, "npm install -D frontkit-test-loader-absent") {
			t.Errorf("Fix = %q", res.Fix)
		}
	})

	t.Run("found in an ancestor", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "node_modules", "tsx", "package.json"), `{"name":"tsx","version":"4.7.0"}`)
		nested := filepath.Join(root, "packages", "web")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		res, err := (&LoaderCheck{}).Run(context.Background(), ExecContext{WorkDir: nested})
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != StatusPass || !strings.Contains(res.Message, "4.7.0") {
			t.Errorf("result = %+v", res)
		}
	})

	t.Run("broken package.json", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "node_modules", "tsx", "package.json"), `{not json`)
		if _, err := (&LoaderCheck{}).Run(context.Background(), ExecContext{WorkDir: root}); err == nil {
			t.Error("expected error for unparsable package.json")
		}
	})
}

func TestAppDirCheck(t *testing.T) {
	tests := []struct {
		name       string
		dirs       []string
		files      []string
		flags      map[string]string
		wantStatus Status
	}{
		{"none", nil, nil, nil, StatusFail},
		{"file named app is ignored", nil, []string{"app"}, nil, StatusFail},
		{"app", []string{"app"}, nil, nil, StatusPass},
		{"src/pages", []string{"src/pages"}, nil, nil, StatusPass},
		{"ambiguous", []string{"app", "src/pages"}, nil, nil, StatusWarn},
		{"explicit wins over ambiguity", []string{"app", "pages", "web"}, nil, map[string]string{"app": "web"}, StatusPass},
		{"explicit missing", []string{"app"}, nil, map[string]string{"app": "web"}, StatusFail},
		{"configured pagesDir", []string{"app", "pages"}, nil, map[string]string{"pagesDir": "pages"}, StatusPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, d := range tt.dirs {
				if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755); err != nil {
					t.Fatal(err)
				}
			}
			for _, f := range tt.files {
				writeTestFile(t, filepath.Join(root, f), "")
			}

			res, err := (&AppDirCheck{}).Run(context.Background(), NewExecContext(root, tt.flags, nil))
			if err != nil {
				t.Fatal(err)
			}
			if res.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q (%s)", res.Status, tt.wantStatus, res.Message)
			}
			if res.Status != StatusPass && strings.TrimSpace(res.Fix) == "" {
				t.Error("non-pass result without fix")
			}
		})
	}
}

func TestAppDirCheckCustomPatterns(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"apps/web/src", "apps/docs/src"} {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755); err != nil {
			t.Fatal(err)
		}
	}

	res, err := (&AppDirCheck{Candidates: []string{"apps/*/src"}}).Run(context.Background(), ExecContext{WorkDir: root})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusWarn {
		t.Errorf("Status = %q, want warn", res.Status)
	}
	if !strings.Contains(res.Message, "apps/docs/src, apps/web/src") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestShellCheck(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		env        map[string]string
		wantStatus Status
	}{
		{"zsh", "darwin", map[string]string{"SHELL": "/bin/zsh"}, StatusPass},
		{"unknown", "linux", nil, StatusPass},
		{"git bash on windows", "windows", map[string]string{"SHELL": "/usr/bin/bash", "ComSpec": `C:\Windows\system32\cmd.exe`}, StatusPass},
		{"cmd", "windows", map[string]string{"ComSpec": `C:\Windows\system32\cmd.exe`}, StatusWarn},
		{"pwsh", "windows", map[string]string{"PSModulePath": `C:\Users\me\Documents\PowerShell\Modules;C:\Program Files\PowerShell\Modules`}, StatusWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := (&ShellCheck{GOOS: tt.goos}).Run(context.Background(), NewExecContext("", nil, tt.env))
			if err != nil {
				t.Fatal(err)
			}
			if res.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q (%s)", res.Status, tt.wantStatus, res.Message)
			}
			if res.Status == StatusWarn && !strings.Contains(res.Fix, "'add:component'") {
				t.Errorf("Fix = %q, want quoting guidance", res.Fix)
			}
		})
	}
}

func TestConfigCheck(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		res, err := (&ConfigCheck{}).Run(context.Background(), ExecContext{WorkDir: t.TempDir()})
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != StatusPass {
			t.Errorf("Status = %q, want pass", res.Status)
		}
	})

	t.Run("valid", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "frontkit.config.yaml"), "useTailwind: true\npagesDir: src/app\n")
		res, err := (&ConfigCheck{}).Run(context.Background(), ExecContext{WorkDir: dir})
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != StatusPass {
			t.Errorf("Status = %q, want pass (%s)", res.Status, res.Message)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "frontkit.config.json"), `{"useTailwind": "yes"}`)
		res, err := (&ConfigCheck{}).Run(context.Background(), ExecContext{WorkDir: dir})
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != StatusFail || res.Fix == "" {
			t.Errorf("result = %+v", res)
		}
		if !strings.Contains(res.Message, "useTailwind") {
			t.Errorf("Message = %q, want the offending key", res.Message)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "frontkit.config.toml"), "useTailwind = = true\n")
		res, err := (&ConfigCheck{}).Run(context.Background(), ExecContext{WorkDir: dir})
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != StatusFail {
			t.Errorf("Status = %q, want fail", res.Status)
		}
	})
}

// ─── Test Helpers ──────────────────────────────────────────────────

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
