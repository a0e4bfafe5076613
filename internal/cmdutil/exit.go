package cmdutil

import (
	"errors"

	oerrors "github.com/1eedaegon/boots/internal/errors"
)

// Fail wraps err in an ExitError carrying the exit code its sentinel maps
// to. Errors that already carry an exit code are returned unchanged.
func Fail(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
