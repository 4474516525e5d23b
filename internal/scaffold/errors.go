package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the failing operation.
var (
	// ErrCreateDir indicates a directory could not be created.
	ErrCreateDir = errors.New("scaffold: create directory")

	// ErrWriteFile indicates a file could not be opened, written or closed.
	ErrWriteFile = errors.New("scaffold: write file")
)

// PathError records the failing operation, the filesystem path it was
// applied to and the underlying error. It matches both the operation
// sentinel and the underlying error under errors.Is.
type PathError struct {
	Op   error
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%v %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the operation sentinel and the underlying error.
func (e *PathError) Unwrap() []error {
	return []error{e.Op, e.Err}
}
