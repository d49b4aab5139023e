package runtime

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestExecRunner_CapturesAndStreams(t *testing.T) {
	requireShell(t)

	var stdoutBuf, stderrBuf bytes.Buffer
	r := &ExecRunner{Stdout: &stdoutBuf, Stderr: &stderrBuf}

	out, err := r.Run(context.Background(), "", "sh", "-c", "echo hello; echo oops 1>&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success() {
		t.Fatalf("expected exit code 0, got %d", out.ExitCode)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("captured stdout = %q", out.Stdout)
	}
	if strings.TrimSpace(stdoutBuf.String()) != "hello" {
		t.Errorf("streamed stdout = %q", stdoutBuf.String())
	}
	if strings.TrimSpace(stderrBuf.String()) != "oops" {
		t.Errorf("streamed stderr = %q", stderrBuf.String())
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	out, err := r.Run(context.Background(), "", "sh", "-c", "exit 42")
	if err != nil {
		t.Fatalf("unexpected error (non-zero exit should not be an error): %v", err)
	}
	if out.ExitCode != 42 {
		t.Errorf("expected exit code 42, got %d", out.ExitCode)
	}
	if out.Success() {
		t.Error("Success() should be false")
	}
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if _, err := r.Run(context.Background(), dir, "sh", "-c", "touch marker"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), "", "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestExecRunner_Cancelled(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if _, err := r.Run(ctx, "", "sh", "-c", "sleep 5"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
