package generator

import (
	"fmt"

	oerrors "github.com/1eedaegon/boots/internal/errors"
)

// DirectoryExistsError reports that the project root is already present.
type DirectoryExistsError struct {
	Name string
}

func (e *DirectoryExistsError) Error() string {
	return fmt.Sprintf("directory already exists: %s", e.Name)
}

func (e *DirectoryExistsError) Unwrap() error {
	return oerrors.ErrAlreadyExists
}
