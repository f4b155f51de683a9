package scaffold

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/example/entforge/internal/core/field"
)

// buildYAMLMapping emits the yml mapping file for an entity. The
// document is assembled from yaml nodes rather than maps so that fields
// appear in insertion order.
func buildYAMLMapping(data *entityData) (string, error) {
	entity := newMapping(
		"type", strNode("entity"),
		"table", strNode(data.Table),
		"repositoryClass", strNode(data.RepositoryFQCN),
		"id", newMapping(
			"id", newMapping(
				"type", strNode("integer"),
				"generator", newMapping("strategy", strNode("AUTO")),
			),
		),
	)

	// Group by mapping section, preserving field order within each.
	sections := map[string]*yaml.Node{}
	for _, f := range data.Fields {
		section := sectionName(f.Kind)
		if sections[section] == nil {
			sections[section] = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		}
		appendPair(sections[section], f.Property, fieldNode(f))
	}
	for _, section := range []string{"fields", "oneToOne", "oneToMany", "manyToOne", "manyToMany"} {
		if node := sections[section]; node != nil {
			appendPair(entity, section, node)
		}
	}

	root := newMapping(data.FQCN, entity)
	out, err := yaml.Marshal(root)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func sectionName(kind string) string {
	switch kind {
	case field.OneToOneKind:
		return "oneToOne"
	case field.OneToManyKind:
		return "oneToMany"
	case field.ManyToOneKind:
		return "manyToOne"
	case field.ManyToManyKind:
		return "manyToMany"
	default:
		return "fields"
	}
}

// fieldNode renders one field or relation as a mapping node.
func fieldNode(f fieldData) *yaml.Node {
	if f.Kind == "" {
		node := newMapping("type", strNode(f.Type), "column", strNode(f.Column))
		if f.Length > 0 {
			appendPair(node, "length", intNode(f.Length))
		}
		return node
	}

	node := newMapping("targetEntity", strNode(f.Target))
	if f.MappedBy != "" {
		appendPair(node, "mappedBy", strNode(f.MappedBy))
	}
	if f.InversedBy != "" {
		appendPair(node, "inversedBy", strNode(f.InversedBy))
	}
	if f.JoinColumn != nil {
		appendPair(node, "joinColumn", newMapping(
			"name", strNode(f.JoinColumn.Name),
			"referencedColumnName", strNode(f.JoinColumn.ReferencedColumn),
		))
	}
	if f.JoinTable != nil {
		appendPair(node, "joinTable", newMapping("name", strNode(f.JoinTable.Name)))
	}
	return node
}

// yaml node helpers

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intNode(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}

// newMapping builds a mapping node from alternating key, value pairs.
func newMapping(pairs ...any) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(pairs); i += 2 {
		appendPair(node, pairs[i].(string), pairs[i+1].(*yaml.Node))
	}
	return node
}

func appendPair(node *yaml.Node, key string, value *yaml.Node) {
	node.Content = append(node.Content, strNode(key), value)
}
