// Package autocomplete lists known entity class names for prompt
// suggestions.
package autocomplete

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/entforge/internal/registry"
)

// Source walks the registered bundles for existing entity classes.
type Source struct {
	registry *registry.Registry
	root     string // project root the bundle dirs are relative to
}

// New creates a suggestion source over the given registry, resolving
// bundle directories against root.
func New(reg *registry.Registry, root string) *Source {
	return &Source{registry: reg, root: root}
}

// Suggestions returns the fully qualified class names of every entity
// found under the registered bundles' Entity directories, sorted. With
// applyAliases, namespace prefixes are rewritten to Alias: shorthand.
func (s *Source) Suggestions(applyAliases bool) []string {
	var names []string
	for _, b := range s.registry.Bundles() {
		entityDir := filepath.Join(s.root, b.Dir, "Entity")
		ns := b.EntityNamespace()
		filepath.WalkDir(entityDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil // unreadable or missing dirs contribute nothing
			}
			base := d.Name()
			if !strings.HasSuffix(base, ".php") || strings.HasSuffix(base, "Repository.php") {
				return nil
			}
			rel, err := filepath.Rel(entityDir, path)
			if err != nil {
				return nil
			}
			class := strings.TrimSuffix(filepath.ToSlash(rel), ".php")
			names = append(names, ns+`\`+strings.ReplaceAll(class, "/", `\`))
			return nil
		})
	}
	sort.Strings(names)
	names = dedupe(names)

	if applyAliases {
		replacer := s.aliasReplacer()
		for i, name := range names {
			names[i] = replacer(name)
		}
	}
	return names
}

// dedupe removes adjacent duplicates from a sorted slice. Bundles whose
// dirs nest inside each other walk the same class files more than once.
func dedupe(sorted []string) []string {
	out := sorted[:0]
	for _, name := range sorted {
		if len(out) == 0 || out[len(out)-1] != name {
			out = append(out, name)
		}
	}
	return out
}

// aliasReplacer builds a deterministic namespace-to-alias substitution.
// Prefixes are tried longest first so that a bundle whose namespace
// nests inside another's never loses to the shorter parent prefix.
func (s *Source) aliasReplacer() func(string) string {
	type replacement struct {
		prefix string
		alias  string
	}
	var table []replacement
	for _, b := range s.registry.Bundles() {
		table = append(table, replacement{prefix: b.EntityNamespace() + `\`, alias: b.Alias + ":"})
	}
	sort.Slice(table, func(i, j int) bool {
		if len(table[i].prefix) != len(table[j].prefix) {
			return len(table[i].prefix) > len(table[j].prefix)
		}
		return table[i].prefix < table[j].prefix
	})

	return func(name string) string {
		for _, r := range table {
			if strings.HasPrefix(name, r.prefix) {
				return r.alias + strings.ReplaceAll(strings.TrimPrefix(name, r.prefix), `\`, "/")
			}
		}
		return name
	}
}
