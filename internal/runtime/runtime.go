package runtime

import "context"

// Runner executes an external command.
type Runner interface {
	// Run executes name with args in dir. A non-zero exit is reported through
	// Output.ExitCode with a nil error; the error is reserved for failures to
	// start or wait for the process.
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status zero.
func (o *Output) Success() bool {
	return o != nil && o.ExitCode == 0
}
