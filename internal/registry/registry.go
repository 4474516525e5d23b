package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/modu-ai/skelgen/internal/layout"
)

//go:embed all:payload
var payloadFS embed.FS

// Registry maps file names to template content. A Registry is immutable
// after construction and safe for concurrent reads.
type Registry struct {
	entries map[string]string
}

// New builds a Registry from entries. Keys must be plain file names as
// accepted by layout.CheckName. The map is copied.
func New(entries map[string]string) (*Registry, error) {
	for name := range entries {
		if err := layout.CheckName(name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidName, err)
		}
	}
	return &Registry{entries: maps.Clone(entries)}, nil
}

// FromFS builds a Registry from the regular files at the top level of fsys.
// Subdirectories are ignored. In tests use testing/fstest.MapFS.
func FromFS(fsys fs.FS) (*Registry, error) {
	dirEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read template directory: %w", err)
	}

	entries := make(map[string]string, len(dirEntries))
	for _, e := range dirEntries {
		if !e.Type().IsRegular() {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("read template %q: %w", e.Name(), err)
		}
		entries[e.Name()] = string(data)
	}
	return New(entries)
}

// Default returns the registry of embedded canonical templates.
func Default() (*Registry, error) {
	sub, err := fs.Sub(payloadFS, "payload")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return FromFS(sub)
}

// Lookup returns the content registered for name.
func (r *Registry) Lookup(name string) (string, bool) {
	content, ok := r.entries[name]
	return content, ok
}

// Content is like Lookup but reports a missing name as ErrTemplateNotFound.
func (r *Registry) Content(name string) (string, error) {
	content, ok := r.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return content, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Merge returns a new Registry holding r's entries overlaid by overlay's.
// Neither input is modified.
func (r *Registry) Merge(overlay *Registry) *Registry {
	if overlay == nil {
		return r
	}
	merged := maps.Clone(r.entries)
	if merged == nil {
		merged = make(map[string]string, overlay.Len())
	}
	maps.Copy(merged, overlay.entries)
	return &Registry{entries: merged}
}
