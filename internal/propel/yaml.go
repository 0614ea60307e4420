package propel

import (
	"fmt"
	"os"
	"strings"

	"github.com/yegor-usoltsev/propel-prune/internal/schema"
	"github.com/yegor-usoltsev/propel-prune/internal/validate"

	"gopkg.in/yaml.v3"
)

const (
	yamlRootKey    = "propel"
	yamlAttrsKey   = "_attributes"
	yamlPHPNameKey = "phpName"
)

func readYAML(path string) ([]table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileOpen, path, err)
	}

	s, err := schema.PropelYAML()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	if err := validate.Document(s, path, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	// Decode into a node tree so mapping keys keep their document order.
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %s: %w", ErrInvalidSchema, path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: %s: empty document", ErrInvalidSchema, path)
	}
	root := mappingValue(doc.Content[0], yamlRootKey)
	if root == nil {
		return nil, fmt.Errorf("%w: %s: missing %q mapping", ErrInvalidSchema, path, yamlRootKey)
	}

	var tables []table
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if strings.HasPrefix(key, "_") {
			continue
		}
		t := table{Name: key}
		if attrs := mappingValue(root.Content[i+1], yamlAttrsKey); attrs != nil {
			if n := mappingValue(attrs, yamlPHPNameKey); n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() != "!!null" {
				t.PHPName = n.Value
			}
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolveAlias(n.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
