package layout

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FilesKey is the reserved descriptor key holding a directory's own file list.
const FilesKey = "files"

// Node is one directory of a descriptor. The set of implementations is
// closed: a Node is either a DirectoryGroup or a FileList.
type Node interface {
	// NodeName returns the directory name relative to its parent.
	NodeName() string

	node()
}

// DirectoryGroup is a directory that may hold files and nested directories.
type DirectoryGroup struct {
	Name     string
	Files    []string
	Children []Node
}

// FileList is a directory that holds files only.
type FileList struct {
	Name  string
	Files []string
}

// NodeName implements Node.
func (g DirectoryGroup) NodeName() string { return g.Name }

// NodeName implements Node.
func (l FileList) NodeName() string { return l.Name }

func (DirectoryGroup) node() {}
func (FileList) node()       {}

// WalkFunc is called once per directory with its slash-separated path
// relative to the root ("." for the root itself) and its file names.
type WalkFunc func(dir string, files []string) error

// Walk visits root and every nested directory depth-first in declaration
// order. A directory is visited before its children. The first error
// returned by fn stops the walk.
func Walk(root Node, fn WalkFunc) error {
	return walk(".", root, fn)
}

func walk(dir string, n Node, fn WalkFunc) error {
	switch n := n.(type) {
	case DirectoryGroup:
		if err := fn(dir, n.Files); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := walk(path.Join(dir, child.NodeName()), child, fn); err != nil {
				return err
			}
		}
		return nil
	case FileList:
		return fn(dir, n.Files)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownNode, n)
	}
}

// Files returns the relative path of every file listed in root, in walk order.
func Files(root Node) []string {
	var out []string
	_ = Walk(root, func(dir string, files []string) error {
		for _, f := range files {
			out = append(out, path.Join(dir, f))
		}
		return nil
	})
	return out
}

// CheckName reports whether name is usable as a single path segment.
func CheckName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is a relative reference", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidName, name)
	case !norm.NFC.IsNormalString(name):
		return fmt.Errorf("%w: %q is not NFC normalized", ErrInvalidName, name)
	}
	return nil
}

// Validate checks every name in root and rejects duplicate siblings.
// The root group itself must be unnamed.
func Validate(root DirectoryGroup) error {
	if root.Name != "" {
		return &NameError{Dir: ".", Name: root.Name, Wrapped: fmt.Errorf("%w: root must be unnamed", ErrInvalidName)}
	}
	return validateGroup(".", root.Files, root.Children)
}

func validateGroup(dir string, files []string, children []Node) error {
	seen := make(map[string]struct{}, len(files)+len(children))
	check := func(name string) error {
		if err := CheckName(name); err != nil {
			return &NameError{Dir: dir, Name: name, Wrapped: err}
		}
		if _, dup := seen[name]; dup {
			return &NameError{Dir: dir, Name: name, Wrapped: ErrDuplicateName}
		}
		seen[name] = struct{}{}
		return nil
	}

	for _, f := range files {
		if err := check(f); err != nil {
			return err
		}
	}
	for _, child := range children {
		name := child.NodeName()
		if err := check(name); err != nil {
			return err
		}
		childDir := path.Join(dir, name)
		switch c := child.(type) {
		case DirectoryGroup:
			if err := validateGroup(childDir, c.Files, c.Children); err != nil {
				return err
			}
		case FileList:
			if err := validateGroup(childDir, c.Files, nil); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T", ErrUnknownNode, child)
		}
	}
	return nil
}
