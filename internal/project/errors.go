package project

import (
	"fmt"

	oerrors "github.com/1eedaegon/boots/internal/errors"
)

// InvalidOptionError reports an unrecognized token in the options string.
type InvalidOptionError struct {
	Option string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: %s", e.Option)
}

func (e *InvalidOptionError) Unwrap() error {
	return oerrors.ErrValidation
}

// InvalidNameError reports a project name that cannot be used as a
// directory and crate prefix.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, e.Reason)
}

func (e *InvalidNameError) Unwrap() error {
	return oerrors.ErrValidation
}
