// Package entity provides templates for entity and mapping generation.
package entity

import (
	"embed"
	"strings"
)

//go:embed php/*.tmpl mapping/*.tmpl
var entityTemplates embed.FS

// GetTemplate returns the content of a template by short name,
// e.g. "entity.php" or "mapping.xml".
func GetTemplate(name string) (string, error) {
	dir := "php"
	if strings.HasPrefix(name, "mapping.") {
		dir = "mapping"
	}
	content, err := entityTemplates.ReadFile(dir + "/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
