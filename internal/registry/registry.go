// Package registry resolves bundle shorthand notation (Alias:Path/To/Entity)
// to namespaces and filesystem locations.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Bundle describes one registered bundle.
type Bundle struct {
	Alias     string // shorthand alias, e.g. "AcmeBlog"
	Namespace string // namespace root, e.g. `Acme\BlogBundle`
	Dir       string // bundle root directory, relative to the project root
}

// EntityNamespace returns the namespace entities of this bundle live in.
func (b Bundle) EntityNamespace() string {
	return b.Namespace + `\Entity`
}

// Registry holds the registered bundles.
type Registry struct {
	bundles map[string]Bundle
}

// New creates a registry from a bundle list. Later duplicates of an
// alias win, matching config file order.
func New(bundles []Bundle) *Registry {
	r := &Registry{bundles: make(map[string]Bundle, len(bundles))}
	for _, b := range bundles {
		r.bundles[b.Alias] = b
	}
	return r
}

// Bundle looks up a bundle by alias.
func (r *Registry) Bundle(alias string) (Bundle, error) {
	b, ok := r.bundles[alias]
	if !ok {
		return Bundle{}, fmt.Errorf("bundle %q is not registered", alias)
	}
	return b, nil
}

// Bundles returns all bundles sorted by alias.
func (r *Registry) Bundles() []Bundle {
	out := make([]Bundle, 0, len(r.bundles))
	for _, b := range r.bundles {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}

// Resolve splits an "Alias:Path/To/Entity" shorthand into the bundle and
// the slash-separated entity path within it.
func (r *Registry) Resolve(shorthand string) (Bundle, string, error) {
	alias, entity, ok := strings.Cut(shorthand, ":")
	if !ok || alias == "" || entity == "" {
		return Bundle{}, "", fmt.Errorf("malformed entity shorthand %q (expected Bundle:Path/To/Entity)", shorthand)
	}
	entity = strings.Trim(strings.ReplaceAll(entity, `\`, "/"), "/")
	if entity == "" {
		return Bundle{}, "", fmt.Errorf("malformed entity shorthand %q (empty entity path)", shorthand)
	}
	b, err := r.Bundle(alias)
	if err != nil {
		return Bundle{}, "", err
	}
	return b, entity, nil
}

// TargetClass expands an Alias:Path shorthand into the fully qualified
// entity class name.
func (r *Registry) TargetClass(shorthand string) (string, error) {
	b, entity, err := r.Resolve(shorthand)
	if err != nil {
		return "", err
	}
	return b.EntityNamespace() + `\` + strings.ReplaceAll(entity, "/", `\`), nil
}
