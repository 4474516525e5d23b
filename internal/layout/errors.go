package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the layout package.
var (
	// ErrInvalidLayout indicates a descriptor document could not be decoded.
	ErrInvalidLayout = errors.New("layout: invalid descriptor")

	// ErrInvalidName indicates a directory or file name is not a plain path segment.
	ErrInvalidName = errors.New("layout: invalid name")

	// ErrDuplicateName indicates two siblings share the same name.
	ErrDuplicateName = errors.New("layout: duplicate name")

	// ErrUnknownNode indicates a Node implementation outside this package.
	ErrUnknownNode = errors.New("layout: unknown node type")

	// ErrUnsupportedFormat indicates a descriptor file extension with no decoder.
	ErrUnsupportedFormat = errors.New("layout: unsupported descriptor format")
)

// NameError reports a rejected name together with the directory it was found in.
type NameError struct {
	Dir     string
	Name    string
	Wrapped error
}

// Error implements the error interface.
func (e *NameError) Error() string {
	return fmt.Sprintf("%v: %q in %q", e.Wrapped, e.Name, e.Dir)
}

// Unwrap returns the underlying sentinel error.
func (e *NameError) Unwrap() error {
	return e.Wrapped
}
