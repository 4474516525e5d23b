package scaffold

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modu-ai/skelgen/internal/layout"
	"github.com/modu-ai/skelgen/internal/registry"
)

// mapTemplates is a minimal Templates implementation for tests.
type mapTemplates map[string]string

func (m mapTemplates) Lookup(name string) (string, bool) {
	content, ok := m[name]
	return content, ok
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readFile(t *testing.T, fsys billy.Filesystem, p string) string {
	t.Helper()
	f, err := fsys.Open(p)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

func assertMissing(t *testing.T, fsys billy.Filesystem, p string) {
	t.Helper()
	_, err := fsys.Stat(p)
	assert.ErrorIs(t, err, os.ErrNotExist, "expected %q to be absent", p)
}

func defaultRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return reg
}

func smallLayout() layout.DirectoryGroup {
	return layout.DirectoryGroup{
		Files: []string{"top.txt"},
		Children: []layout.Node{
			layout.DirectoryGroup{
				Name:  "svc",
				Files: []string{"svc.txt", "nonexistent.txt"},
				Children: []layout.Node{
					layout.FileList{Name: "deep", Files: []string{"top.txt"}},
				},
			},
			layout.FileList{Name: "empty"},
		},
	}
}

func TestMaterializeCanonicalLayout(t *testing.T) {
	fsys := memfs.New()
	m := New(fsys, defaultRegistry(t), WithLogger(discardLogger()))

	report, err := m.Materialize(context.Background(), "/tmp/out", layout.Default())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(readFile(t, fsys, "/tmp/out/web/Dockerfile"), "FROM python:3.10-slim"))
	assert.Contains(t, readFile(t, fsys, "/tmp/out/web/app/main.py"), "app = FastAPI()")
	assert.Contains(t, readFile(t, fsys, "/tmp/out/docker-compose.yml"), "POSTGRES_DB: mydb")
	assert.Equal(t, "", readFile(t, fsys, "/tmp/out/web/app/routers/__init__.py"))

	assert.Equal(t, []string{".", "web", "web/app", "web/app/routers"}, report.Dirs)
	assert.Equal(t, layout.Files(layout.Default()), report.Written)
	assert.Empty(t, report.Skipped)
}

func TestMaterializeCompleteness(t *testing.T) {
	fsys := memfs.New()
	tmpl := mapTemplates{"top.txt": "top\n", "svc.txt": "svc\n"}

	_, err := New(fsys, tmpl, WithLogger(discardLogger())).Materialize(context.Background(), "/base", smallLayout())
	require.NoError(t, err)

	assert.Equal(t, "top\n", readFile(t, fsys, "/base/top.txt"))
	assert.Equal(t, "svc\n", readFile(t, fsys, "/base/svc/svc.txt"))
	assert.Equal(t, "top\n", readFile(t, fsys, "/base/svc/deep/top.txt"))

	info, err := fsys.Stat("/base/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMaterializeSkipsUnregisteredNames(t *testing.T) {
	fsys := memfs.New()
	tmpl := mapTemplates{"top.txt": "top\n", "svc.txt": "svc\n"}

	report, err := New(fsys, tmpl, WithLogger(discardLogger())).Materialize(context.Background(), "/base", smallLayout())
	require.NoError(t, err)

	assertMissing(t, fsys, "/base/svc/nonexistent.txt")
	assert.Equal(t, []string{"svc/nonexistent.txt"}, report.Skipped)
}

func TestMaterializeWithEmptyTemplatesCreatesOnlyDirectories(t *testing.T) {
	fsys := memfs.New()

	report, err := New(fsys, mapTemplates{}, WithLogger(discardLogger())).Materialize(context.Background(), "/base", layout.Default())
	require.NoError(t, err)

	assert.Empty(t, report.Written)
	assert.Len(t, report.Skipped, 8)
	for _, p := range layout.Files(layout.Default()) {
		assertMissing(t, fsys, "/base/"+p)
	}
	info, err := fsys.Stat("/base/web/app/routers")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMaterializeIsIdempotent(t *testing.T) {
	fsys := memfs.New()
	m := New(fsys, defaultRegistry(t), WithLogger(discardLogger()))

	first, err := m.Materialize(context.Background(), "/out", layout.Default())
	require.NoError(t, err)
	second, err := m.Materialize(context.Background(), "/out", layout.Default())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	entries, err := fsys.ReadDir("/out/web")
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"Dockerfile", "requirements.txt", "app"}, names)
}

func TestMaterializeOverwritesFully(t *testing.T) {
	fsys := memfs.New()
	root := layout.DirectoryGroup{Files: []string{"a.txt"}}

	_, err := New(fsys, mapTemplates{"a.txt": "a much longer first version\n"}, WithLogger(discardLogger())).
		Materialize(context.Background(), "/out", root)
	require.NoError(t, err)

	_, err = New(fsys, mapTemplates{"a.txt": "v2\n"}, WithLogger(discardLogger())).
		Materialize(context.Background(), "/out", root)
	require.NoError(t, err)

	assert.Equal(t, "v2\n", readFile(t, fsys, "/out/a.txt"))
}

func TestMaterializeKeepsExistingContent(t *testing.T) {
	base := t.TempDir()
	extra := filepath.Join(base, "web", "notes.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(extra), 0o755))
	require.NoError(t, os.WriteFile(extra, []byte("keep me"), 0o644))

	_, err := New(HostFS(), defaultRegistry(t), WithLogger(discardLogger())).
		Materialize(context.Background(), base, layout.Default())
	require.NoError(t, err)

	data, err := os.ReadFile(extra)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestMaterializeObserver(t *testing.T) {
	var events []Event
	m := New(memfs.New(), mapTemplates{"top.txt": "x"},
		WithLogger(discardLogger()),
		WithObserver(func(e Event) { events = append(events, e) }),
	)

	_, err := m.Materialize(context.Background(), "/base", smallLayout())
	require.NoError(t, err)

	want := []Event{
		{Kind: DirCreated, Path: "."},
		{Kind: FileWritten, Path: "top.txt"},
		{Kind: DirCreated, Path: "svc"},
		{Kind: FileSkipped, Path: "svc/svc.txt"},
		{Kind: FileSkipped, Path: "svc/nonexistent.txt"},
		{Kind: DirCreated, Path: "svc/deep"},
		{Kind: FileWritten, Path: "svc/deep/top.txt"},
		{Kind: DirCreated, Path: "empty"},
	}
	assert.Equal(t, want, events)

	planned, err := Plan(smallLayout(), mapTemplates{"top.txt": "x"})
	require.NoError(t, err)
	assert.Equal(t, want, planned)
	assert.Equal(t, 2, CountWrites(planned))
}

func TestMaterializeCancelled(t *testing.T) {
	fsys := memfs.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(fsys, mapTemplates{"top.txt": "x"}, WithLogger(discardLogger())).Materialize(ctx, "/base", smallLayout())
	require.ErrorIs(t, err, context.Canceled)
	assertMissing(t, fsys, "/base")
}

func TestMaterializeDirectoryCollision(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "web"), []byte("not a directory"), 0o644))

	report, err := New(HostFS(), defaultRegistry(t), WithLogger(discardLogger())).
		Materialize(context.Background(), base, layout.Default())
	require.ErrorIs(t, err, ErrCreateDir)
	assert.NotErrorIs(t, err, ErrWriteFile)

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, filepath.Join(base, "web"), pathErr.Path)

	// Files written before the failure stay in place.
	assert.Equal(t, []string{"docker-compose.yml"}, report.Written)
	_, statErr := os.Stat(filepath.Join(base, "docker-compose.yml"))
	assert.NoError(t, statErr)
}

func TestMaterializeWriteFailure(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "web", "Dockerfile"), 0o755))

	_, err := New(HostFS(), defaultRegistry(t), WithLogger(discardLogger())).
		Materialize(context.Background(), base, layout.Default())
	require.ErrorIs(t, err, ErrWriteFile)

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, filepath.Join(base, "web", "Dockerfile"), pathErr.Path)
	assertMissing(t, osfs.New(base), "web/requirements.txt")
}

func TestMaterializeRejectsInvalidLayout(t *testing.T) {
	tests := []struct {
		name    string
		root    layout.DirectoryGroup
		wantErr error
	}{
		{
			name: "parent_segment",
			root: layout.DirectoryGroup{
				Children: []layout.Node{layout.FileList{Name: "../escaped", Files: []string{"a.txt"}}},
			},
			wantErr: layout.ErrInvalidName,
		},
		{
			name:    "named_root",
			root:    layout.DirectoryGroup{Name: "proj", Files: []string{"a.txt"}},
			wantErr: layout.ErrInvalidName,
		},
		{
			name: "duplicate_sibling",
			root: layout.DirectoryGroup{
				Files:    []string{"a.txt"},
				Children: []layout.Node{layout.FileList{Name: "a.txt"}},
			},
			wantErr: layout.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := t.TempDir()
			base := filepath.Join(parent, "base")
			tmpl := mapTemplates{"a.txt": "x"}

			report, err := New(HostFS(), tmpl, WithLogger(discardLogger())).
				Materialize(context.Background(), base, tt.root)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, report)

			entries, err := os.ReadDir(parent)
			require.NoError(t, err)
			assert.Empty(t, entries, "nothing may be created next to or inside base")

			_, err = Generate(context.Background(), base, tt.root, tmpl, WithLogger(discardLogger()))
			require.ErrorIs(t, err, tt.wantErr)

			_, err = Plan(tt.root, tmpl)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("absolute_base", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "does", "not", "exist")

		_, err := Generate(context.Background(), base, layout.Default(), defaultRegistry(t), WithLogger(discardLogger()))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(base, "web", "Dockerfile"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "FROM python:3.10-slim"))
	})

	t.Run("relative_base", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		_, err := Generate(context.Background(), ".", layout.Default(), defaultRegistry(t), WithLogger(discardLogger()))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "docker-compose.yml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "POSTGRES_DB: mydb")
	})
}

func TestExisting(t *testing.T) {
	fsys := memfs.New()
	tmpl := mapTemplates{"top.txt": "x", "svc.txt": "y"}
	steps, err := Plan(smallLayout(), tmpl)
	require.NoError(t, err)

	found, err := Existing(fsys, "/base", steps)
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = New(fsys, tmpl, WithLogger(discardLogger())).Materialize(context.Background(), "/base", smallLayout())
	require.NoError(t, err)

	found, err = Existing(fsys, "/base", steps)
	require.NoError(t, err)
	assert.Equal(t, []string{"top.txt", "svc/svc.txt", "svc/deep/top.txt"}, found)
}

func TestPathErrorUnwrap(t *testing.T) {
	err := &PathError{Op: ErrWriteFile, Path: "/x", Err: os.ErrPermission}
	assert.ErrorIs(t, err, ErrWriteFile)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, `scaffold: write file "/x": permission denied`, err.Error())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "mkdir", DirCreated.String())
	assert.Equal(t, "write", FileWritten.String())
	assert.Equal(t, "skip", FileSkipped.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
