package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SITEGEN_HOME", dir)
	Reset()
	t.Cleanup(Reset)
	return dir
}

func TestDir_HomeOverride(t *testing.T) {
	dir := setupConfigHome(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setupConfigHome(t)
	Load()

	s := Current()
	if s.NPX != "npx" || s.NPM != "npm" {
		t.Errorf("tools = %q/%q, want npx/npm", s.NPX, s.NPM)
	}
	if s.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", s.OutputDir, ".")
	}
	if s.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", s.LogFormat)
	}
	if s.MinNodeVersion != ">=18.18.0" {
		t.Errorf("MinNodeVersion = %q", s.MinNodeVersion)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	setupConfigHome(t)
	t.Setenv("SITEGEN_TOOLS_NPM", "/opt/node/bin/npm")
	Load()

	if got := Current().NPM; got != "/opt/node/bin/npm" {
		t.Errorf("NPM = %q, want env override", got)
	}
}

func TestSetAndReload(t *testing.T) {
	dir := setupConfigHome(t)
	Load()

	if err := Set(KeyLogFormat, "json"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "json") {
		t.Errorf("config file does not contain the new value:\n%s", data)
	}

	Reset()
	Load()
	if got := Get(KeyLogFormat); got != "json" {
		t.Errorf("Get(%s) after reload = %q, want json", KeyLogFormat, got)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupConfigHome(t)
	Load()

	if err := Set("nope", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
