package cli

import (
	"errors"

	"github.com/sitegen-labs/sitegen/internal/scaffold"
	"github.com/sitegen-labs/sitegen/internal/site"
)

// Process exit statuses.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitInvalidInput = 2
	ExitScaffoldTool = 3
	ExitInstall      = 4
	ExitFilesystem   = 5
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, site.ErrInvalidChoice) {
		return ExitInvalidInput
	}
	switch scaffold.KindOf(err) {
	case scaffold.KindScaffoldTool:
		return ExitScaffoldTool
	case scaffold.KindInstall:
		return ExitInstall
	case scaffold.KindFilesystem:
		return ExitFilesystem
	}
	return ExitError
}
