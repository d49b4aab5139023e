//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	BinDir    string // fake npx/npm, prepended to PATH
	ParentDir string // where projects are generated
	LogFile   string // each fake tool appends "<name> <args>" here
}

// setupTestEnv puts shell-script stand-ins for npx and npm on PATH. The npx
// script creates <name>/src/app the way create-next-app does; exit codes are
// controlled through FAKE_NPX_EXIT and FAKE_NPM_EXIT.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	env := &testEnv{
		BinDir:    t.TempDir(),
		ParentDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")

	writeScript(t, filepath.Join(env.BinDir, "npx"), `#!/bin/sh
echo "npx $*" >> "`+env.LogFile+`"
if [ -n "$FAKE_NPX_EXIT" ]; then exit "$FAKE_NPX_EXIT"; fi
mkdir -p "$2/src/app"
echo "generated" > "$2/src/app/page.tsx"
`)
	writeScript(t, filepath.Join(env.BinDir, "npm"), `#!/bin/sh
echo "npm $* (in $(pwd))" >> "`+env.LogFile+`"
if [ -n "$FAKE_NPM_EXIT" ]; then exit "$FAKE_NPM_EXIT"; fi
`)

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("SITEGEN_HOME", t.TempDir())
	return env
}

func writeScript(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogFile)
	if err != nil {
		return nil
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}
