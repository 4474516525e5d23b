package layout

import (
	"strings"
)

// Tree renders root as an indented box-drawing tree. Files are listed
// before subdirectories, and directories carry a trailing slash.
func Tree(root DirectoryGroup) string {
	var b strings.Builder
	b.WriteString(".\n")
	writeEntries(&b, "", root.Files, root.Children)
	return b.String()
}

func writeEntries(b *strings.Builder, prefix string, files []string, children []Node) {
	total := len(files) + len(children)
	i := 0
	branch := func() (string, string) {
		i++
		if i == total {
			return "└── ", "    "
		}
		return "├── ", "│   "
	}

	for _, f := range files {
		head, _ := branch()
		b.WriteString(prefix + head + f + "\n")
	}
	for _, child := range children {
		head, indent := branch()
		b.WriteString(prefix + head + child.NodeName() + "/\n")
		switch c := child.(type) {
		case DirectoryGroup:
			writeEntries(b, prefix+indent, c.Files, c.Children)
		case FileList:
			writeEntries(b, prefix+indent, c.Files, nil)
		}
	}
}
