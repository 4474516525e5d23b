package layout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Load reads a descriptor file, choosing the decoder from its extension
// (.yaml, .yml or .toml). The decoded descriptor is validated.
func Load(path string) (DirectoryGroup, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return DirectoryGroup{}, fmt.Errorf("read layout %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".toml":
		return DecodeTOML(data)
	default:
		return DirectoryGroup{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// DecodeYAML decodes a YAML descriptor document. Sibling order follows the
// document. An empty document yields an empty root.
func DecodeYAML(data []byte) (DirectoryGroup, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DirectoryGroup{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return DirectoryGroup{}, nil
	}

	root, err := groupFromYAML("", doc.Content[0])
	if err != nil {
		return DirectoryGroup{}, err
	}
	if err := Validate(root); err != nil {
		return DirectoryGroup{}, err
	}
	return root, nil
}

func groupFromYAML(name string, n *yaml.Node) (DirectoryGroup, error) {
	n = resolveAlias(n)
	g := DirectoryGroup{Name: name}
	if isYAMLNull(n) {
		return g, nil
	}
	if n.Kind != yaml.MappingNode {
		return g, fmt.Errorf("%w: line %d: %q must be a mapping", ErrInvalidLayout, n.Line, displayName(name))
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolveAlias(n.Content[i]), resolveAlias(n.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return g, fmt.Errorf("%w: line %d: non-scalar key", ErrInvalidLayout, k.Line)
		}
		key := norm.NFC.String(k.Value)

		if key == FilesKey {
			files, err := namesFromYAML(key, v)
			if err != nil {
				return g, err
			}
			g.Files = files
			continue
		}

		switch {
		case v.Kind == yaml.MappingNode || isYAMLNull(v):
			child, err := groupFromYAML(key, v)
			if err != nil {
				return g, err
			}
			g.Children = append(g.Children, child)
		case v.Kind == yaml.SequenceNode:
			files, err := namesFromYAML(key, v)
			if err != nil {
				return g, err
			}
			g.Children = append(g.Children, FileList{Name: key, Files: files})
		default:
			return g, fmt.Errorf("%w: line %d: %q must be a mapping or a sequence", ErrInvalidLayout, v.Line, key)
		}
	}
	return g, nil
}

func namesFromYAML(key string, n *yaml.Node) ([]string, error) {
	if isYAMLNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: %q must be a sequence of file names", ErrInvalidLayout, n.Line, key)
	}
	names := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode || isYAMLNull(item) {
			return nil, fmt.Errorf("%w: line %d: %q entries must be file names", ErrInvalidLayout, item.Line, key)
		}
		names = append(names, norm.NFC.String(item.Value))
	}
	return names, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isYAMLNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// DecodeTOML decodes a TOML descriptor document. TOML tables carry no key
// order, so siblings are sorted by name.
func DecodeTOML(data []byte) (DirectoryGroup, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return DirectoryGroup{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	root, err := groupFromMap("", doc)
	if err != nil {
		return DirectoryGroup{}, err
	}
	if err := Validate(root); err != nil {
		return DirectoryGroup{}, err
	}
	return root, nil
}

func groupFromMap(name string, m map[string]any) (DirectoryGroup, error) {
	g := DirectoryGroup{Name: name}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		key := norm.NFC.String(k)
		switch v := m[k].(type) {
		case []any:
			files, err := namesFromList(key, v)
			if err != nil {
				return g, err
			}
			if key == FilesKey {
				g.Files = files
				continue
			}
			g.Children = append(g.Children, FileList{Name: key, Files: files})
		case map[string]any:
			if key == FilesKey {
				return g, fmt.Errorf("%w: %q in %q must be an array of file names", ErrInvalidLayout, key, displayName(name))
			}
			child, err := groupFromMap(key, v)
			if err != nil {
				return g, err
			}
			g.Children = append(g.Children, child)
		default:
			return g, fmt.Errorf("%w: %q in %q must be a table or an array", ErrInvalidLayout, key, displayName(name))
		}
	}
	return g, nil
}

func namesFromList(key string, items []any) ([]string, error) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q entries must be file names, got %T", ErrInvalidLayout, key, item)
		}
		names = append(names, norm.NFC.String(s))
	}
	return names, nil
}

func displayName(name string) string {
	if name == "" {
		return "."
	}
	return name
}

// EncodeYAML renders root in the descriptor file format accepted by
// DecodeYAML. File lists use flow style.
func EncodeYAML(root DirectoryGroup) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(groupToYAML(root)); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

func groupToYAML(g DirectoryGroup) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if len(g.Files) > 0 {
		m.Content = append(m.Content, scalar(FilesKey), namesToYAML(g.Files))
	}
	for _, child := range g.Children {
		switch c := child.(type) {
		case DirectoryGroup:
			m.Content = append(m.Content, scalar(c.Name), groupToYAML(c))
		case FileList:
			m.Content = append(m.Content, scalar(c.Name), namesToYAML(c.Files))
		}
	}
	return m
}

func namesToYAML(names []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, n := range names {
		seq.Content = append(seq.Content, scalar(n))
	}
	return seq
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
