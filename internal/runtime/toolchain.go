package runtime

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`v?\d+(\.\d+){0,2}([-+][0-9A-Za-z.-]+)?`)

// ToolStatus is the outcome of probing one binary.
type ToolStatus struct {
	Name       string
	Found      bool
	Version    string
	Constraint string
	Satisfied  bool
	Err        error
}

// ParseVersion extracts the first version number from tool output such as
// "v20.11.1" or "10.2.4\n".
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(strings.TrimSpace(output))
	if match == "" {
		return nil, fmt.Errorf("no version number in %q", strings.TrimSpace(output))
	}
	return semver.NewVersion(strings.TrimPrefix(match, "v"))
}

// ProbeVersion runs "<bin> --version" and parses the result.
func ProbeVersion(ctx context.Context, r Runner, bin string) (*semver.Version, error) {
	out, err := r.Run(ctx, "", bin, "--version")
	if err != nil {
		return nil, err
	}
	if !out.Success() {
		return nil, fmt.Errorf("%s --version exited with status %d", bin, out.ExitCode)
	}
	return ParseVersion(out.Stdout)
}

// CheckTool probes bin and, when constraint is non-empty, checks the version
// against it.
func CheckTool(ctx context.Context, r Runner, bin, constraint string) ToolStatus {
	status := ToolStatus{Name: bin, Constraint: constraint}

	v, err := ProbeVersion(ctx, r, bin)
	if err != nil {
		status.Err = err
		return status
	}
	status.Found = true
	status.Version = v.String()

	if constraint == "" {
		status.Satisfied = true
		return status
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		status.Err = fmt.Errorf("parsing constraint %q: %w", constraint, err)
		return status
	}
	status.Satisfied = c.Check(v)
	return status
}
