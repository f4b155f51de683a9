// Package scaffold generates Doctrine entity classes and mapping
// metadata from a field specification.
package scaffold

// Formats lists the accepted mapping metadata formats.
var Formats = []string{"annotation", "php", "xml", "yml"}

// ValidFormat reports whether format is one of the accepted formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// GeneratedFile represents a file to be written.
type GeneratedFile struct {
	Path    string // path relative to the project root
	Content string
}

// Result contains the artifacts produced for one entity. The notable
// paths are broken out for reporting; Files carries the content.
type Result struct {
	EntityPath     string
	RepositoryPath string
	MappingPath    string // empty for the annotation format
	Files          []GeneratedFile
}
