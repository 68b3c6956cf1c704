//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frontkit-labs/frontkit/internal/cli"
)

// testEnv holds paths to an isolated project.
type testEnv struct {
	ProjectDir string // project root, passed as --cwd
	BinDir     string // prepended to PATH for fake tools
}

// setupTestEnv creates an isolated project directory and clears the
// FRONTKIT_* overrides so the developer's environment cannot leak in.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}
	for _, key := range []string{"FRONTKIT_USETAILWIND", "FRONTKIT_USECHAKRA", "FRONTKIT_DEFAULTLAYOUT", "FRONTKIT_PAGESDIR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return env
}

// installFakeNode puts a node script printing version on PATH. POSIX only.
func installFakeNode(t *testing.T, env *testEnv, version string) {
	t.Helper()
	script := "#!/bin/sh\necho v" + version + "\n"
	writeFile(t, filepath.Join(env.BinDir, "node"), script)
	if err := os.Chmod(filepath.Join(env.BinDir, "node"), 0755); err != nil {
		t.Fatalf("chmod fake node: %v", err)
	}
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// installLoader creates node_modules/tsx/package.json in the project.
func installLoader(t *testing.T, env *testEnv) {
	t.Helper()
	writeFile(t, filepath.Join(env.ProjectDir, "node_modules", "tsx", "package.json"), `{"name":"tsx","version":"4.7.0"}`)
}

// runCLI executes the command tree in-process against the test project.
func runCLI(t *testing.T, env *testEnv, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd(cli.BuildInfo{Version: "test", Commit: "none", Date: "today"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--cwd", env.ProjectDir, "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
