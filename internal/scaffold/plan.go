package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/modu-ai/skelgen/internal/layout"
)

// Plan returns the events a run of root would produce, without touching
// any filesystem. root is validated as in Materialize.
func Plan(root layout.DirectoryGroup, templates Templates) ([]Event, error) {
	if err := layout.Validate(root); err != nil {
		return nil, err
	}

	var steps []Event
	err := layout.Walk(root, func(dir string, files []string) error {
		steps = append(steps, Event{Kind: DirCreated, Path: dir})
		for _, name := range files {
			kind := FileSkipped
			if _, ok := templates.Lookup(name); ok {
				kind = FileWritten
			}
			steps = append(steps, Event{Kind: kind, Path: path.Join(dir, name)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// CountWrites returns the number of FileWritten events in steps.
func CountWrites(steps []Event) int {
	n := 0
	for _, s := range steps {
		if s.Kind == FileWritten {
			n++
		}
	}
	return n
}

// Existing returns the planned writes whose target already exists under
// base, i.e. the files a run would overwrite.
func Existing(fsys billy.Filesystem, base string, steps []Event) ([]string, error) {
	var found []string
	for _, s := range steps {
		if s.Kind != FileWritten {
			continue
		}
		_, err := fsys.Stat(fsys.Join(base, s.Path))
		switch {
		case err == nil:
			found = append(found, s.Path)
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("stat %q: %w", s.Path, err)
		}
	}
	return found, nil
}

// HostFS returns a filesystem rooted at the host root, addressed with
// absolute paths.
func HostFS() billy.Filesystem {
	return osfs.New(string(filepath.Separator))
}

// Generate materializes root under base on the host filesystem. A relative
// base is resolved against the working directory.
func Generate(ctx context.Context, base string, root layout.DirectoryGroup, templates Templates, opts ...Option) (*Report, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolve base path %q: %w", base, err)
	}
	return New(HostFS(), templates, opts...).Materialize(ctx, abs, root)
}
