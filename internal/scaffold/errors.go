package scaffold

import (
	"errors"
	"fmt"
)

// Kind classifies a scaffold failure so callers can react to each case.
type Kind int

const (
	// KindScaffoldTool means create-next-app could not run or exited non-zero.
	KindScaffoldTool Kind = iota + 1
	// KindInstall means the package installer could not run or exited non-zero.
	KindInstall
	// KindFilesystem means a directory or file operation failed.
	KindFilesystem
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrScaffoldTool = errors.New("scaffold tool failed")
	ErrInstall      = errors.New("dependency install failed")
	ErrFilesystem   = errors.New("filesystem operation failed")
)

func (k Kind) String() string {
	switch k {
	case KindScaffoldTool:
		return "scaffold-tool"
	case KindInstall:
		return "install"
	case KindFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindScaffoldTool:
		return ErrScaffoldTool
	case KindInstall:
		return ErrInstall
	case KindFilesystem:
		return ErrFilesystem
	default:
		return nil
	}
}

// Error is returned by Create for any failed step.
type Error struct {
	Kind    Kind
	Step    string
	Project string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Project, e.Step, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if s := e.Kind.sentinel(); s != nil {
		return []error{s, e.Err}
	}
	return []error{e.Err}
}

// KindOf returns the Kind of err, or 0 if err is not a scaffold error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
