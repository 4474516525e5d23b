package registry

import "errors"

// Sentinel errors for the registry package.
var (
	// ErrInvalidName indicates a registry key that is not a plain file name.
	ErrInvalidName = errors.New("registry: invalid template name")

	// ErrTemplateNotFound indicates a lookup for an unregistered name.
	ErrTemplateNotFound = errors.New("registry: template not found")
)
