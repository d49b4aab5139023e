package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "sitegen" {
		t.Errorf("CLIName() = %q, want %q", got, "sitegen")
	}
	if got := HomeDir(); got != ".sitegen" {
		t.Errorf("HomeDir() = %q, want %q", got, ".sitegen")
	}
	if got := EnvPrefix(); got != "SITEGEN" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "SITEGEN")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "SITEGEN_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", got, "SITEGEN_HOME")
	}
}
