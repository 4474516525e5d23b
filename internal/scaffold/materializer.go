package scaffold

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/modu-ai/skelgen/internal/layout"
)

// Templates resolves a file name to its content.
// *registry.Registry satisfies this interface.
type Templates interface {
	Lookup(name string) (string, bool)
}

// EventKind identifies what happened to a path during a run.
type EventKind int

const (
	// DirCreated is emitted after a directory is created or found present.
	DirCreated EventKind = iota
	// FileWritten is emitted after a file is written.
	FileWritten
	// FileSkipped is emitted for a listed file with no template.
	FileSkipped
)

// String returns the lower-case name of the event kind.
func (k EventKind) String() string {
	switch k {
	case DirCreated:
		return "mkdir"
	case FileWritten:
		return "write"
	case FileSkipped:
		return "skip"
	default:
		return "unknown"
	}
}

// Event describes one step of a run. Path is slash-separated and relative
// to the base path.
type Event struct {
	Kind EventKind
	Path string
}

// Report lists the relative paths touched by a run, in walk order.
type Report struct {
	Dirs    []string
	Written []string
	Skipped []string
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithLogger sets the logger used for per-path debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Materializer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithObserver registers a callback invoked synchronously for every event.
func WithObserver(fn func(Event)) Option {
	return func(m *Materializer) {
		m.observer = fn
	}
}

// Materializer realizes layout descriptors on a billy filesystem.
type Materializer struct {
	fs        billy.Filesystem
	templates Templates
	logger    *slog.Logger
	observer  func(Event)
}

// New creates a Materializer writing to fsys and resolving content with
// templates. In production fsys is osfs; in tests use memfs.
func New(fsys billy.Filesystem, templates Templates, opts ...Option) *Materializer {
	m := &Materializer{
		fs:        fsys,
		templates: templates,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize creates base and every directory of root beneath it, then
// writes each registered file. root is validated first; an invalid root
// touches nothing. The context is checked before every directory and file.
func (m *Materializer) Materialize(ctx context.Context, base string, root layout.DirectoryGroup) (*Report, error) {
	if err := layout.Validate(root); err != nil {
		return nil, err
	}

	report := &Report{}

	err := layout.Walk(root, func(dir string, files []string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		dirPath := m.fs.Join(base, dir)
		if err := m.fs.MkdirAll(dirPath, 0o755); err != nil {
			return &PathError{Op: ErrCreateDir, Path: dirPath, Err: err}
		}
		m.logger.Debug("directory ready", "path", dirPath)
		report.Dirs = append(report.Dirs, dir)
		m.emit(DirCreated, dir)

		for _, name := range files {
			if err := ctx.Err(); err != nil {
				return err
			}

			rel := path.Join(dir, name)
			content, ok := m.templates.Lookup(name)
			if !ok {
				m.logger.Debug("no template registered, skipping", "path", rel)
				report.Skipped = append(report.Skipped, rel)
				m.emit(FileSkipped, rel)
				continue
			}

			if err := m.writeFile(m.fs.Join(dirPath, name), content); err != nil {
				return err
			}
			m.logger.Debug("file written", "path", rel, "bytes", len(content))
			report.Written = append(report.Written, rel)
			m.emit(FileWritten, rel)
		}
		return nil
	})
	return report, err
}

// writeFile replaces the file at p with content.
func (m *Materializer) writeFile(p, content string) (err error) {
	f, err := m.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm(p))
	if err != nil {
		return &PathError{Op: ErrWriteFile, Path: p, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &PathError{Op: ErrWriteFile, Path: p, Err: cerr}
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return &PathError{Op: ErrWriteFile, Path: p, Err: err}
	}
	return nil
}

func (m *Materializer) emit(kind EventKind, p string) {
	if m.observer != nil {
		m.observer(Event{Kind: kind, Path: p})
	}
}

// filePerm returns the mode for a generated file. Shell scripts are
// executable.
func filePerm(p string) fs.FileMode {
	if strings.HasSuffix(p, ".sh") {
		return 0o755
	}
	return 0o644
}
