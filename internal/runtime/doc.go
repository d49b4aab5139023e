// Package runtime runs the external Node.js tooling the generator depends on.
// ExecRunner starts child processes with an explicit working directory and
// streams their output; the toolchain helpers probe binary versions with
// semver constraints for the doctor command.
package runtime
